package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/simplyrugby/club-server/internal/domain/entity"
	"github.com/simplyrugby/club-server/pkg/logger/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeSquadStorage struct {
	squads map[string]*entity.Squad
}

func newFakeSquadStorage(squads ...*entity.Squad) *fakeSquadStorage {
	f := &fakeSquadStorage{squads: make(map[string]*entity.Squad)}
	for _, squad := range squads {
		f.squads[squad.ID] = squad
	}
	return f
}

func (f *fakeSquadStorage) Create(_ context.Context, squad *entity.Squad) (*entity.Squad, error) {
	if squad.ID == "" {
		squad.ID = fmt.Sprintf("squad-%d", len(f.squads)+1)
	}
	f.squads[squad.ID] = squad
	return squad, nil
}

func (f *fakeSquadStorage) Get(_ context.Context, id string) (*entity.Squad, error) {
	if squad, ok := f.squads[id]; ok {
		return squad, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSquadStorage) GetAll(_ context.Context) ([]entity.Squad, error) {
	var squads []entity.Squad
	for _, squad := range f.squads {
		squads = append(squads, *squad)
	}
	return squads, nil
}

type fakePlayerStorage struct {
	players map[string]*entity.Player
}

func newFakePlayerStorage(players ...*entity.Player) *fakePlayerStorage {
	f := &fakePlayerStorage{players: make(map[string]*entity.Player)}
	for _, player := range players {
		f.players[player.ID] = player
	}
	return f
}

func (f *fakePlayerStorage) Get(_ context.Context, id string) (*entity.Player, error) {
	if player, ok := f.players[id]; ok {
		return player, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlayerStorage) UpdateSquad(_ context.Context, playerID string, squadID *string) error {
	player, ok := f.players[playerID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	player.SquadID = squadID
	return nil
}

func (f *fakePlayerStorage) GetBySquadID(_ context.Context, squadID string) ([]entity.Player, error) {
	var players []entity.Player
	for _, player := range f.players {
		if player.SquadID != nil && *player.SquadID == squadID {
			players = append(players, *player)
		}
	}
	return players, nil
}

func (f *fakePlayerStorage) GetUnassigned(_ context.Context) ([]entity.Player, error) {
	var players []entity.Player
	for _, player := range f.players {
		if player.SquadID == nil {
			players = append(players, *player)
		}
	}
	return players, nil
}

type fakeCoachStorage struct {
	coaches map[string]*entity.Coach
}

func newFakeCoachStorage(coaches ...*entity.Coach) *fakeCoachStorage {
	f := &fakeCoachStorage{coaches: make(map[string]*entity.Coach)}
	for _, coach := range coaches {
		f.coaches[coach.ID] = coach
	}
	return f
}

func (f *fakeCoachStorage) Get(_ context.Context, id string) (*entity.Coach, error) {
	if coach, ok := f.coaches[id]; ok {
		return coach, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCoachStorage) GetAll(_ context.Context) ([]entity.Coach, error) {
	var coaches []entity.Coach
	for _, coach := range f.coaches {
		coaches = append(coaches, *coach)
	}
	return coaches, nil
}

type fakePlanStorage struct {
	plans    map[string]*entity.TrainingPlan
	sessions map[string][]entity.TrainingSession
}

func newFakePlanStorage(plans ...*entity.TrainingPlan) *fakePlanStorage {
	f := &fakePlanStorage{
		plans:    make(map[string]*entity.TrainingPlan),
		sessions: make(map[string][]entity.TrainingSession),
	}
	for _, plan := range plans {
		f.plans[plan.ID] = plan
	}
	return f
}

func (f *fakePlanStorage) CreateWithSessions(_ context.Context, plan *entity.TrainingPlan, sessions []entity.TrainingSession) error {
	if plan.ID == "" {
		plan.ID = fmt.Sprintf("plan-%d", len(f.plans)+1)
	}
	for i := range sessions {
		sessions[i].ID = fmt.Sprintf("%s-session-%d", plan.ID, i+1)
		sessions[i].PlanID = plan.ID
	}
	f.plans[plan.ID] = plan
	f.sessions[plan.ID] = sessions
	return nil
}

func (f *fakePlanStorage) Get(_ context.Context, id string) (*entity.TrainingPlan, error) {
	if plan, ok := f.plans[id]; ok {
		return plan, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlanStorage) GetByCoachID(_ context.Context, coachID string) ([]entity.TrainingPlan, error) {
	var plans []entity.TrainingPlan
	for _, plan := range f.plans {
		if plan.CoachID == coachID {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func (f *fakePlanStorage) ExistsForCoachAndSquad(_ context.Context, coachID, squadID string) (bool, error) {
	for _, plan := range f.plans {
		if plan.CoachID == coachID && plan.SquadID == squadID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlanStorage) Update(_ context.Context, plan *entity.TrainingPlan) (*entity.TrainingPlan, error) {
	f.plans[plan.ID] = plan
	return plan, nil
}

type fakeSessionStorage struct {
	sessions map[string]*entity.TrainingSession
}

func newFakeSessionStorage(sessions ...*entity.TrainingSession) *fakeSessionStorage {
	f := &fakeSessionStorage{sessions: make(map[string]*entity.TrainingSession)}
	for _, session := range sessions {
		f.sessions[session.ID] = session
	}
	return f
}

func (f *fakeSessionStorage) Get(_ context.Context, id string) (*entity.TrainingSession, error) {
	if session, ok := f.sessions[id]; ok {
		return session, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSessionStorage) GetByPlanID(_ context.Context, planID string) ([]entity.TrainingSession, error) {
	var sessions []entity.TrainingSession
	for _, session := range f.sessions {
		if session.PlanID == planID {
			sessions = append(sessions, *session)
		}
	}
	return sessions, nil
}

func (f *fakeSessionStorage) UpdateStatus(_ context.Context, id string, status entity.SessionStatus) error {
	session, ok := f.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	session.Status = status
	return nil
}

type fakeAttendanceStorage struct {
	records map[string]*entity.PlayerAttendance
}

func newFakeAttendanceStorage() *fakeAttendanceStorage {
	return &fakeAttendanceStorage{records: make(map[string]*entity.PlayerAttendance)}
}

func attendanceKey(playerID, sessionID string) string {
	return playerID + "/" + sessionID
}

func (f *fakeAttendanceStorage) Create(_ context.Context, attendance *entity.PlayerAttendance) (*entity.PlayerAttendance, error) {
	attendance.ID = fmt.Sprintf("attendance-%d", len(f.records)+1)
	f.records[attendanceKey(attendance.PlayerID, attendance.SessionID)] = attendance
	return attendance, nil
}

func (f *fakeAttendanceStorage) GetByPlayerAndSession(_ context.Context, playerID, sessionID string) (*entity.PlayerAttendance, error) {
	if record, ok := f.records[attendanceKey(playerID, sessionID)]; ok {
		return record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceStorage) Update(_ context.Context, attendance *entity.PlayerAttendance) (*entity.PlayerAttendance, error) {
	f.records[attendanceKey(attendance.PlayerID, attendance.SessionID)] = attendance
	return attendance, nil
}

func (f *fakeAttendanceStorage) GetByPlayerID(_ context.Context, playerID string) ([]entity.PlayerAttendance, error) {
	var records []entity.PlayerAttendance
	for _, record := range f.records {
		if record.PlayerID == playerID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (f *fakeAttendanceStorage) GetBySessionID(_ context.Context, sessionID string) ([]entity.PlayerAttendance, error) {
	var records []entity.PlayerAttendance
	for _, record := range f.records {
		if record.SessionID == sessionID {
			records = append(records, *record)
		}
	}
	return records, nil
}

type fakeMessageStorage struct {
	messages map[string]*entity.Message
}

func newFakeMessageStorage() *fakeMessageStorage {
	return &fakeMessageStorage{messages: make(map[string]*entity.Message)}
}

func (f *fakeMessageStorage) CreateBatch(_ context.Context, messages []entity.Message) error {
	for i := range messages {
		messages[i].ID = fmt.Sprintf("message-%d", len(f.messages)+1)
		msg := messages[i]
		f.messages[msg.ID] = &msg
	}
	return nil
}

func (f *fakeMessageStorage) Get(_ context.Context, id string) (*entity.Message, error) {
	if message, ok := f.messages[id]; ok {
		return message, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMessageStorage) GetByReceiver(_ context.Context, receiverID string, unreadOnly bool, limit, offset int) ([]entity.Message, error) {
	var messages []entity.Message
	for _, message := range f.messages {
		if message.ReceiverID != receiverID {
			continue
		}
		if unreadOnly && message.IsRead {
			continue
		}
		messages = append(messages, *message)
	}
	return messages, nil
}

func (f *fakeMessageStorage) Update(_ context.Context, message *entity.Message) (*entity.Message, error) {
	f.messages[message.ID] = message
	return message, nil
}

func (f *fakeMessageStorage) CountUnread(_ context.Context, receiverID string) (int64, error) {
	var count int64
	for _, message := range f.messages {
		if message.ReceiverID == receiverID && !message.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeUserStorage struct {
	users map[string]*entity.User
}

func newFakeUserStorage(users ...*entity.User) *fakeUserStorage {
	f := &fakeUserStorage{users: make(map[string]*entity.User)}
	for _, user := range users {
		f.users[user.ID] = user
	}
	return f
}

func (f *fakeUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStorage) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStorage) GetMany(_ context.Context, ids []string) ([]entity.User, error) {
	var users []entity.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStorage) create(user *entity.User) {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	f.users[user.ID] = user
}

func (f *fakeUserStorage) CreateWithCoach(_ context.Context, user *entity.User, coach *entity.Coach) error {
	f.create(user)
	coach.UserID = user.ID
	return nil
}

func (f *fakeUserStorage) CreateWithPlayer(_ context.Context, user *entity.User, player *entity.Player) error {
	f.create(user)
	player.UserID = user.ID
	return nil
}

func (f *fakeUserStorage) CreateWithJuniorPlayer(_ context.Context, user *entity.User, junior *entity.JuniorPlayer) error {
	f.create(user)
	junior.UserID = user.ID
	return nil
}

func (f *fakeUserStorage) CreateWithNonPlayerMember(_ context.Context, user *entity.User, member *entity.NonPlayerMember) error {
	f.create(user)
	member.UserID = user.ID
	return nil
}

func (f *fakeUserStorage) CreateWithMemberAssistant(_ context.Context, user *entity.User, assistant *entity.MemberAssistant) error {
	f.create(user)
	assistant.UserID = user.ID
	return nil
}

func (f *fakeUserStorage) GetWithPagination(_ context.Context, offset, limit int, _ string) ([]entity.User, error) {
	var users []entity.User
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserStorage) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeJuniorStorage struct {
	juniors map[string]*entity.JuniorPlayer
}

func newFakeJuniorStorage(juniors ...*entity.JuniorPlayer) *fakeJuniorStorage {
	f := &fakeJuniorStorage{juniors: make(map[string]*entity.JuniorPlayer)}
	for _, junior := range juniors {
		f.juniors[junior.ID] = junior
	}
	return f
}

func (f *fakeJuniorStorage) GetBySquadID(_ context.Context, squadID string) ([]entity.JuniorPlayer, error) {
	var juniors []entity.JuniorPlayer
	for _, junior := range f.juniors {
		if junior.SquadID != nil && *junior.SquadID == squadID {
			juniors = append(juniors, *junior)
		}
	}
	return juniors, nil
}

type fakeAssistantStorage struct {
	assistants map[string]*entity.MemberAssistant
}

func newFakeAssistantStorage(assistants ...*entity.MemberAssistant) *fakeAssistantStorage {
	f := &fakeAssistantStorage{assistants: make(map[string]*entity.MemberAssistant)}
	for _, assistant := range assistants {
		f.assistants[assistant.ID] = assistant
	}
	return f
}

func (f *fakeAssistantStorage) Get(_ context.Context, id string) (*entity.MemberAssistant, error) {
	if assistant, ok := f.assistants[id]; ok {
		return assistant, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSessionTokenStorage struct {
	tokens map[string]string
}

func newFakeSessionTokenStorage() *fakeSessionTokenStorage {
	return &fakeSessionTokenStorage{tokens: make(map[string]string)}
}

func (f *fakeSessionTokenStorage) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeSessionTokenStorage) Get(_ context.Context, token string) (string, error) {
	if userID, ok := f.tokens[token]; ok {
		return userID, nil
	}
	return "", redis.Nil
}

func (f *fakeSessionTokenStorage) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}
