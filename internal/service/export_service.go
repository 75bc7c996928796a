package service

import (
	"context"
	"strings"

	"marketing-agent-be/internal/dto"
	"marketing-agent-be/internal/pkg/logger"
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/internal/repository/memory"
	"marketing-agent-be/pkg/docfile"
	"marketing-agent-be/pkg/store"
)

const wordContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// IExportService renders the current session draft as a downloadable file.
// Every export renders fresh from the stored Markdown; nothing is cached and a
// failed render leaves the draft untouched.
type IExportService interface {
	ExportWord(ctx context.Context, sessionId string) (*dto.ExportFileResponse, error)
	ExportMarkdown(ctx context.Context, sessionId string) (*dto.ExportFileResponse, error)
}

type exportService struct {
	sessions *memory.SessionRepository
	logger   logger.ILogger
}

func NewExportService(sessions *memory.SessionRepository, log logger.ILogger) IExportService {
	return &exportService{sessions: sessions, logger: log}
}

func (s *exportService) ExportWord(ctx context.Context, sessionId string) (*dto.ExportFileResponse, error) {
	session, err := s.draftSession(sessionId)
	if err != nil {
		return nil, err
	}

	name := displayName(session.Answers)
	buf, err := docfile.ExportWord(session.Draft, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export", "word document rendered", map[string]interface{}{
		"session": session.ID,
		"bytes":   buf.Len(),
	})

	return &dto.ExportFileResponse{
		FileName:    exportFileName(name, ".docx"),
		ContentType: wordContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) ExportMarkdown(ctx context.Context, sessionId string) (*dto.ExportFileResponse, error) {
	session, err := s.draftSession(sessionId)
	if err != nil {
		return nil, err
	}

	name := displayName(session.Answers)
	return &dto.ExportFileResponse{
		FileName:    exportFileName(name, ".md"),
		ContentType: "text/markdown; charset=utf-8",
		Data:        []byte(session.Draft),
	}, nil
}

func (s *exportService) draftSession(sessionId string) (*store.Session, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, serverutils.NewHttpError(404, "session not found or expired")
	}
	if strings.TrimSpace(session.Draft) == "" {
		return nil, serverutils.NewHttpError(400, "no draft to export, generate one first")
	}
	return session, nil
}

// displayName derives the client name from the company overview answer: its
// first line, capped at 50 characters. Falls back to "Client".
func displayName(answers *store.AnswerSet) string {
	for _, id := range []string{"company_overview", "company_background"} {
		answer, found := answers.Get(id)
		if !found {
			continue
		}
		line, _, _ := strings.Cut(strings.TrimSpace(answer), "\n")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 50 {
			line = line[:50]
		}
		return line
	}
	return "Client"
}

func exportFileName(name, ext string) string {
	return strings.ReplaceAll(name, " ", "_") + "_Strategy" + ext
}
