package service

import (
	"context"
	"strings"

	"marketing-agent-be/internal/dto"
	"marketing-agent-be/internal/pkg/serverutils"
	"marketing-agent-be/internal/repository/memory"
	"marketing-agent-be/pkg/store"

	"github.com/google/uuid"
)

// ISessionService manages the per-client answer set and draft lifecycle.
type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	Show(ctx context.Context, id string) (*dto.ShowSessionResponse, error)
	UpsertAnswers(ctx context.Context, id string, req *dto.UpsertAnswersRequest) (*dto.ShowSessionResponse, error)
	Generate(ctx context.Context, id string, req *dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error)
	SaveDraft(ctx context.Context, id string, req *dto.SaveDraftRequest) error
	Reset(ctx context.Context, id string) error
}

type sessionService struct {
	sessions     *memory.SessionRepository
	agentService IAgentService
	draftService IDraftService
}

func NewSessionService(
	sessions *memory.SessionRepository,
	agentService IAgentService,
	draftService IDraftService,
) ISessionService {
	return &sessionService{
		sessions:     sessions,
		agentService: agentService,
		draftService: draftService,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := store.NewSession(uuid.NewString())
	s.sessions.Save(session)
	return &dto.CreateSessionResponse{Id: session.ID}, nil
}

func (s *sessionService) get(id string) (*store.Session, error) {
	session, found := s.sessions.Get(id)
	if !found {
		return nil, serverutils.NewHttpError(404, "session not found or expired")
	}
	return session, nil
}

func (s *sessionService) Show(ctx context.Context, id string) (*dto.ShowSessionResponse, error) {
	session, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toShowResponse(session), nil
}

func (s *sessionService) UpsertAnswers(ctx context.Context, id string, req *dto.UpsertAnswersRequest) (*dto.ShowSessionResponse, error) {
	session, err := s.get(id)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Answers {
		session.Answers.Set(item.Id, item.Answer)
	}
	s.sessions.Save(session)

	return toShowResponse(session), nil
}

// Generate validates required answers, runs the pipeline and supersedes the
// session draft. Two concurrent generations for one session race last-write-
// wins; the UI serializes interaction per session.
func (s *sessionService) Generate(ctx context.Context, id string, req *dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error) {
	session, err := s.get(id)
	if err != nil {
		return nil, err
	}

	missing, err := s.agentService.MissingRequired(req.Agent, session.Answers)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, serverutils.NewHttpError(400,
			"Please answer all required questions: "+strings.Join(missing, "; "))
	}

	draft, err := s.draftService.Generate(ctx, req.Agent, session.Answers)
	if err != nil {
		// No partial draft is saved on generation failure.
		return nil, err
	}

	session.Agent = req.Agent
	session.Draft = draft
	s.sessions.Save(session)

	return &dto.GenerateDraftResponse{
		Agent: req.Agent,
		Draft: draft,
	}, nil
}

func (s *sessionService) SaveDraft(ctx context.Context, id string, req *dto.SaveDraftRequest) error {
	session, err := s.get(id)
	if err != nil {
		return err
	}

	session.Draft = req.Draft
	s.sessions.Save(session)
	return nil
}

func (s *sessionService) Reset(ctx context.Context, id string) error {
	session, err := s.get(id)
	if err != nil {
		return err
	}

	session.Agent = ""
	session.Draft = ""
	session.Answers = store.NewAnswerSet()
	s.sessions.Save(session)
	return nil
}

func toShowResponse(session *store.Session) *dto.ShowSessionResponse {
	pairs := session.Answers.Pairs()
	answers := make([]dto.AnswerItem, 0, len(pairs))
	for _, pair := range pairs {
		answers = append(answers, dto.AnswerItem{Id: pair.Id, Answer: pair.Answer})
	}
	return &dto.ShowSessionResponse{
		Id:      session.ID,
		Agent:   session.Agent,
		Answers: answers,
		Draft:   session.Draft,
	}
}
