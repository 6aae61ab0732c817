package domain

type DayState string

const (
	DayPast   DayState = "past"
	DayUrgent DayState = "urgent"
	DayFuture DayState = "future"
)

type MonthState string

const (
	MonthPast    MonthState = "past"
	MonthCurrent MonthState = "current"
	MonthFuture  MonthState = "future"
)

type CheckInPhase string

const (
	PhaseIdle       CheckInPhase = "idle"
	PhaseConnecting CheckInPhase = "connecting"
	PhaseConnected  CheckInPhase = "connected"
	PhaseSubmitting CheckInPhase = "submitting"
	PhaseCompleted  CheckInPhase = "completed"
)

// RewardMode selects how a check-in grants its reward.
type RewardMode string

const (
	RewardMock RewardMode = "mock"
	RewardLive RewardMode = "live"
)

// ValidRewardModes is the canonical set of accepted reward mode strings.
var ValidRewardModes = map[string]bool{
	"mock": true, "live": true,
}
