package models

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text" binding:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Success        bool   `json:"success"`
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// ChatExchange is one user/assistant turn kept in the conversation store.
type ChatExchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ReminderPayload is the body of a scheduled appointment reminder task.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientEmail  string `json:"patientEmail"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
