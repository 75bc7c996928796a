package service

import (
	"bytes"
	"context"
	"testing"

	"marketing-agent-be/internal/pkg/logger"
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/internal/repository/memory"
	"marketing-agent-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedExportSession(sessions *memory.SessionRepository, draft string, answers map[string]string) *store.Session {
	session := store.NewSession("export-test")
	for id, a := range answers {
		session.Answers.Set(id, a)
	}
	session.Draft = draft
	sessions.Save(session)
	return session
}

func TestExportWordFile(t *testing.T) {
	sessions := memory.NewSessionRepository()
	seedExportSession(sessions, "# Strategy\n- Point", map[string]string{
		"company_overview": "Acme Corp is a hardware maker.\nFounded 2010.",
	})
	svc := NewExportService(sessions, logger.NewNopLogger())

	res, err := svc.ExportWord(context.Background(), "export-test")
	require.NoError(t, err)

	assert.Equal(t, "Acme_Corp_is_a_hardware_maker._Strategy.docx", res.FileName)
	assert.Equal(t, wordContentType, res.ContentType)
	assert.True(t, bytes.HasPrefix(res.Data, []byte("PK")), "docx payload must be a zip archive")
}

func TestExportMarkdownFile(t *testing.T) {
	sessions := memory.NewSessionRepository()
	seedExportSession(sessions, "# Strategy", map[string]string{
		"company_background": "Beta Ltd",
	})
	svc := NewExportService(sessions, logger.NewNopLogger())

	res, err := svc.ExportMarkdown(context.Background(), "export-test")
	require.NoError(t, err)

	assert.Equal(t, "Beta_Ltd_Strategy.md", res.FileName)
	assert.Equal(t, "# Strategy", string(res.Data))
}

func TestExportWithoutDraft(t *testing.T) {
	sessions := memory.NewSessionRepository()
	seedExportSession(sessions, "   ", nil)
	svc := NewExportService(sessions, logger.NewNopLogger())

	_, err := svc.ExportWord(context.Background(), "export-test")

	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestExportUnknownSession(t *testing.T) {
	svc := NewExportService(memory.NewSessionRepository(), logger.NewNopLogger())

	_, err := svc.ExportMarkdown(context.Background(), "missing")

	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
		want    string
	}{
		{
			name:    "first line of overview",
			answers: map[string]string{"company_overview": "Acme Corp\nmore detail"},
			want:    "Acme Corp",
		},
		{
			name:    "background fallback",
			answers: map[string]string{"company_background": "Beta Ltd"},
			want:    "Beta Ltd",
		},
		{
			name:    "blank overview falls through",
			answers: map[string]string{"company_overview": "   ", "company_background": "Beta Ltd"},
			want:    "Beta Ltd",
		},
		{
			name:    "no usable answer",
			answers: nil,
			want:    "Client",
		},
		{
			name:    "long name truncated to fifty",
			answers: map[string]string{"company_overview": "A company with an extraordinarily long descriptive first line"},
			want:    "A company with an extraordinarily long descriptive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := store.NewAnswerSet()
			for id, a := range tt.answers {
				answers.Set(id, a)
			}
			assert.Equal(t, tt.want, displayName(answers))
		})
	}
}
