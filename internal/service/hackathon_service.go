package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/specification"
	"yolcu-backend/internal/repository/unitofwork"
)

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrAlreadyMember     = errors.New("already a team member")
	ErrNotRoomMember     = errors.New("not a member of this room")
)

type IHackathonService interface {
	Create(ctx context.Context, req *dto.CreateHackathonRequest) (*dto.HackathonResponse, error)
	List(ctx context.Context) ([]*dto.HackathonResponse, error)
	CreateTeam(ctx context.Context, userId, hackathonId uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	JoinTeam(ctx context.Context, userId, teamId uuid.UUID) error
	HackathonMessages(ctx context.Context, hackathonId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	TeamMessages(ctx context.Context, userId, teamId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	SendHackathonMessage(ctx context.Context, userId, hackathonId uuid.UUID, content string) (*dto.ChatMessageResponse, error)
	SendTeamMessage(ctx context.Context, userId, teamId uuid.UUID, content string) (*dto.ChatMessageResponse, error)
}

type hackathonService struct {
	uowFactory unitofwork.RepositoryFactory
	pubSub     *gochannel.GoChannel
	log        logger.ILogger
}

func NewHackathonService(uowFactory unitofwork.RepositoryFactory, pubSub *gochannel.GoChannel, log logger.ILogger) IHackathonService {
	return &hackathonService{
		uowFactory: uowFactory,
		pubSub:     pubSub,
		log:        log,
	}
}

func (s *hackathonService) Create(ctx context.Context, req *dto.CreateHackathonRequest) (*dto.HackathonResponse, error) {
	hackathon := &entity.Hackathon{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.HackathonRepository().Create(ctx, hackathon); err != nil {
		return nil, err
	}

	return toHackathonResponse(hackathon), nil
}

func (s *hackathonService) List(ctx context.Context) ([]*dto.HackathonResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hackathons, err := uow.HackathonRepository().FindAll(ctx,
		specification.OrderBy{Field: "start_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.HackathonResponse, len(hackathons))
	for i, h := range hackathons {
		responses[i] = toHackathonResponse(h)
	}
	return responses, nil
}

func (s *hackathonService) CreateTeam(ctx context.Context, userId, hackathonId uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hackathon, err := uow.HackathonRepository().FindOne(ctx, specification.ByID{ID: hackathonId})
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	team := &entity.Team{
		Id:              uuid.New(),
		Name:            req.Name,
		HackathonId:     hackathonId,
		CreatedByUserId: userId,
		CreatedAt:       time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TeamRepository().Create(ctx, team); err != nil {
		return nil, err
	}

	// Creator joins their own team.
	member := &entity.TeamMember{
		Id:       uuid.New(),
		UserId:   userId,
		TeamId:   team.Id,
		JoinedAt: time.Now(),
	}
	if err := uow.TeamMemberRepository().Create(ctx, member); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.TeamResponse{
		Id:          team.Id,
		Name:        team.Name,
		HackathonId: team.HackathonId,
		CreatedAt:   team.CreatedAt,
	}, nil
}

func (s *hackathonService) JoinTeam(ctx context.Context, userId, teamId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	existing, err := uow.TeamMemberRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByTeamID{TeamID: teamId},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyMember
	}

	member := &entity.TeamMember{
		Id:       uuid.New(),
		UserId:   userId,
		TeamId:   teamId,
		JoinedAt: time.Now(),
	}
	return uow.TeamMemberRepository().Create(ctx, member)
}

func (s *hackathonService) HackathonMessages(ctx context.Context, hackathonId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByHackathonID{HackathonID: hackathonId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	return toMessageResponses(messages), nil
}

func (s *hackathonService) TeamMessages(ctx context.Context, userId, teamId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireTeamMembership(ctx, uow, userId, teamId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByTeamID{TeamID: teamId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	return toMessageResponses(messages), nil
}

func (s *hackathonService) SendHackathonMessage(ctx context.Context, userId, hackathonId uuid.UUID, content string) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	hackathon, err := uow.HackathonRepository().FindOne(ctx, specification.ByID{ID: hackathonId})
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	msg := &entity.ChatMessage{
		Id:          uuid.New(),
		Content:     content,
		UserId:      userId,
		HackathonId: &hackathonId,
		CreatedAt:   time.Now(),
	}
	return s.persistAndPublish(ctx, uow, msg, "hackathon:"+hackathonId.String())
}

func (s *hackathonService) SendTeamMessage(ctx context.Context, userId, teamId uuid.UUID, content string) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireTeamMembership(ctx, uow, userId, teamId); err != nil {
		return nil, err
	}

	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		Content:   content,
		UserId:    userId,
		TeamId:    &teamId,
		CreatedAt: time.Now(),
	}
	return s.persistAndPublish(ctx, uow, msg, "team:"+teamId.String())
}

func (s *hackathonService) requireTeamMembership(ctx context.Context, uow unitofwork.UnitOfWork, userId, teamId uuid.UUID) error {
	team, err := uow.TeamRepository().FindOne(ctx, specification.ByID{ID: teamId})
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	member, err := uow.TeamMemberRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByTeamID{TeamID: teamId},
	)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotRoomMember
	}
	return nil
}

// persistAndPublish writes the message row first, then emits the bus event.
// A failed publish is logged but does not fail the send: the message is
// already durable and will appear in history.
func (s *hackathonService) persistAndPublish(ctx context.Context, uow unitofwork.UnitOfWork, msg *entity.ChatMessage, room string) (*dto.ChatMessageResponse, error) {
	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	resp := &dto.ChatMessageResponse{
		Id:        msg.Id,
		Content:   msg.Content,
		UserId:    msg.UserId,
		CreatedAt: msg.CreatedAt,
	}

	event := dto.RoomMessageEvent{Room: room, Message: *resp}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	if err := s.pubSub.Publish(constant.ChatMessageCreatedTopic, message.NewMessage(msg.Id.String(), payload)); err != nil {
		s.log.Error("HackathonService", "publish failed", map[string]interface{}{
			"room":  room,
			"error": err.Error(),
		})
	}

	return resp, nil
}

func toHackathonResponse(h *entity.Hackathon) *dto.HackathonResponse {
	return &dto.HackathonResponse{
		Id:          h.Id,
		Title:       h.Title,
		Description: h.Description,
		StartDate:   h.StartDate,
		EndDate:     h.EndDate,
		CreatedAt:   h.CreatedAt,
	}
}

func toMessageResponses(messages []*entity.ChatMessage) []*dto.ChatMessageResponse {
	responses := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = &dto.ChatMessageResponse{
			Id:        m.Id,
			Content:   m.Content,
			UserId:    m.UserId,
			CreatedAt: m.CreatedAt,
		}
	}
	return responses
}
