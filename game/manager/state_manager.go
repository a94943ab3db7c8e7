package manager

// Phase is the lifecycle stage of a round.
type Phase int

const (
	Starting Phase = iota
	Running
	Ended
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "starting"
	}
}

// EndReason records why a round stopped.
type EndReason int

const (
	NotEnded EndReason = iota
	EndedByWall
	EndedBySelf
	EndedByQuit
	EndedBoardFull
)

func (r EndReason) String() string {
	switch r {
	case EndedByWall:
		return "wall"
	case EndedBySelf:
		return "self"
	case EndedByQuit:
		return "quit"
	case EndedBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// ReasonFor maps a failed legality check to the reason the round ends.
func ReasonFor(c CollisionType) EndReason {
	if c == SelfCollision {
		return EndedBySelf
	}
	return EndedByWall
}

// StateManager tracks score, speed and phase of the current round, plus
// in-memory session counters.
type StateManager struct {
	phase        Phase
	reason       EndReason
	score        int
	speed        int
	ticks        int
	roundsPlayed int
	bestScore    int
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase: Starting,
		speed: 1,
	}
}

// Start resets the round counters and moves straight to Running.
func (sm *StateManager) Start(speed int) {
	sm.phase = Starting
	sm.reason = NotEnded
	sm.score = 0
	sm.ticks = 0
	sm.speed = max(1, speed)
	sm.phase = Running
}

// End closes the round. Ended is terminal; later calls are ignored.
func (sm *StateManager) End(reason EndReason) {
	if sm.phase != Running {
		return
	}
	sm.phase = Ended
	sm.reason = reason
	sm.roundsPlayed++
	if sm.score > sm.bestScore {
		sm.bestScore = sm.score
	}
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

// AdjustSpeed changes the tick rate by delta, never below one.
func (sm *StateManager) AdjustSpeed(delta int) {
	sm.speed = max(1, sm.speed+delta)
}

func (sm *StateManager) Tick() {
	sm.ticks++
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

func (sm *StateManager) Reason() EndReason {
	return sm.reason
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Speed() int {
	return sm.speed
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}

func (sm *StateManager) RoundsPlayed() int {
	return sm.roundsPlayed
}

func (sm *StateManager) GetHighScore() int {
	return sm.bestScore
}
