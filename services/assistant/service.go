package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Sridhar1233sri/consultancy/models"
	"github.com/Sridhar1233sri/consultancy/services/doctor"
	"github.com/Sridhar1233sri/consultancy/services/scheduling"
	"github.com/Sridhar1233sri/consultancy/utils"

	"go.uber.org/zap"
)

// doctorKeywords flag a message as directory/availability related.
var doctorKeywords = []string{"doctor", "dr.", "specialist", "availability", "schedule", "appointment", "slot"}

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// DefaultAssistantService implements AssistantService over a Generator,
// the doctor directory and the scheduling engine.
type DefaultAssistantService struct {
	Generator  Generator
	Store      ConversationStore
	Directory  doctor.DirectoryService
	Scheduling scheduling.SchedulingService
}

func NewDefaultAssistantService(gen Generator, store ConversationStore, dir doctor.DirectoryService, sched scheduling.SchedulingService) *DefaultAssistantService {
	return &DefaultAssistantService{
		Generator:  gen,
		Store:      store,
		Directory:  dir,
		Scheduling: sched,
	}
}

// Chat answers a single user message. Doctor questions get a context block
// built from the directory; when the message also names a date, the live
// free-slot list for that doctor and date is included so the model can
// answer availability questions truthfully.
func (s *DefaultAssistantService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, &utils.InvalidInputError{Field: "text", Reason: "required"}
	}
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = "default"
	}

	history, err := s.Store.Get(ctx, conversationID)
	if err != nil {
		logger.Warn("failed to load conversation history", zap.Error(err))
		history = nil
	}

	prompt := s.buildPrompt(text, history)

	response, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant generation failed: %w", err)
	}

	exchange := models.ChatExchange{User: text, Assistant: response}
	if err := s.Store.Append(ctx, conversationID, exchange); err != nil {
		logger.Warn("failed to store conversation history", zap.Error(err))
	}

	return &models.ChatResponse{
		Success:        true,
		Response:       response,
		ConversationID: conversationID,
	}, nil
}

func (s *DefaultAssistantService) buildPrompt(text string, history []models.ChatExchange) string {
	var sb strings.Builder
	sb.WriteString(s.systemInstruction(text))
	sb.WriteString("\n\n")

	for _, h := range history {
		sb.WriteString("User: " + h.User + "\n")
		sb.WriteString("Assistant: " + h.Assistant + "\n")
	}
	sb.WriteString("User: " + text + "\nAssistant:")
	return sb.String()
}

func (s *DefaultAssistantService) systemInstruction(text string) string {
	if !isDoctorQuery(text) {
		return "You are a helpful healthcare assistant. Provide professional and caring responses. " +
			"For medical advice, always recommend consulting with a healthcare professional directly."
	}

	refs := s.referencedDoctors(text)
	if len(refs) == 0 {
		return "You are a helpful healthcare assistant. The user is asking about doctors but didn't specify which one. " +
			"Please ask for clarification or provide general information about our doctors."
	}

	var sb strings.Builder
	sb.WriteString("You are a helpful healthcare assistant. Use the following doctor information to answer the question:\n\n")
	for _, doc := range refs {
		sb.WriteString(fmt.Sprintf("Doctor %s (%s): Specializes in %s at %s.", doc.Name, doc.ID, doc.Speciality, doc.Hospital))
		if len(doc.Availability) > 0 {
			sb.WriteString(" Availability: ")
			first := true
			for day, hours := range doc.Availability {
				if !first {
					sb.WriteString(", ")
				}
				sb.WriteString(day + " " + hours)
				first = false
			}
			sb.WriteString(".")
		}
		sb.WriteString("\n")
	}

	if date := datePattern.FindString(text); date != "" {
		for _, doc := range refs {
			slots, err := s.Scheduling.FreeSlots(doc.ID, date)
			if err != nil {
				utils.GetLogger().Warn("assistant availability lookup failed",
					zap.String("doctorId", doc.ID), zap.String("date", date), zap.Error(err))
				continue
			}
			if len(slots) == 0 {
				sb.WriteString(fmt.Sprintf("\nDoctor %s has no free slots on %s.", doc.Name, date))
			} else {
				sb.WriteString(fmt.Sprintf("\nFree slots for Doctor %s on %s: %s.", doc.Name, date, strings.Join(slots, ", ")))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nProvide a concise response based on the doctor information. For medical advice, recommend consulting the doctor directly.")
	return sb.String()
}

// referencedDoctors scans the directory for doctors mentioned by name or id.
func (s *DefaultAssistantService) referencedDoctors(text string) []models.Doctor {
	all, err := s.Directory.List()
	if err != nil {
		utils.GetLogger().Warn("assistant directory lookup failed", zap.Error(err))
		return nil
	}

	lower := strings.ToLower(text)
	var refs []models.Doctor
	for _, doc := range all {
		if strings.Contains(lower, strings.ToLower(doc.Name)) || strings.Contains(lower, strings.ToLower(doc.ID)) {
			refs = append(refs, doc)
		}
	}
	return refs
}

func isDoctorQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range doctorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
