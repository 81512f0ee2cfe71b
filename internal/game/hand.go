package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/deck"
)

// HandConfig holds everything a hand borrows from the surrounding session
type HandConfig struct {
	Number         int
	Players        []*Player // Seat order, owned by the roster
	Positions      Positions
	MinBet         int
	RaiseIncrement int // Defaults to MinBet
	Cards          deck.Source
	Provider       ActionProvider
	Ranker         HandRanker // Defaults to HighCardRanker
	Observer       Observer
	Logger         *log.Logger
	Clock          quartz.Clock
}

// ActionRecord is one entry in a hand's action history
type ActionRecord struct {
	PlayerID int
	Name     string
	Stage    Stage
	Action   Action
	Blind    bool
}

// HandResult describes how a hand finished
type HandResult struct {
	Number        int
	Winner        *Player
	Pot           int
	Showdown      bool
	Stage         Stage // Stage the hand ended on
	Community     []deck.Card
	ShownCards    map[int][]deck.Card // Hole cards of players who reached showdown
	Actions       []ActionRecord
	Contributions map[int]int
	StartedAt     time.Time
	Duration      time.Duration
}

// Hand runs a single hand of betting over a set of borrowed players. A hand
// is single use: create a new one for every deal.
type Hand struct {
	number         int
	players        []*Player
	positions      Positions
	minBet         int
	raiseIncrement int
	cards          deck.Source
	provider       ActionProvider
	ranker         HandRanker
	observer       Observer
	logger         *log.Logger
	clock          quartz.Clock

	betting    *BettingRound
	pot        *Pot
	stage      Stage
	round      int
	community  []deck.Card
	actions    []ActionRecord
	startChips int
	startedAt  time.Time
	played     bool
}

// NewHand validates cfg and creates a hand ready to play
func NewHand(cfg HandConfig) (*Hand, error) {
	if err := validatePositions(cfg.Players, cfg.Positions); err != nil {
		return nil, err
	}
	if cfg.MinBet <= 0 {
		return nil, fmt.Errorf("min bet must be positive, got %d", cfg.MinBet)
	}
	if cfg.RaiseIncrement < 0 {
		return nil, fmt.Errorf("raise increment must not be negative, got %d", cfg.RaiseIncrement)
	}
	if cfg.Cards == nil {
		return nil, errors.New("hand requires a card source")
	}
	if cfg.Provider == nil {
		return nil, errors.New("hand requires an action provider")
	}

	if cfg.RaiseIncrement == 0 {
		cfg.RaiseIncrement = cfg.MinBet
	}
	if cfg.Ranker == nil {
		cfg.Ranker = HighCardRanker{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	return &Hand{
		number:         cfg.Number,
		players:        cfg.Players,
		positions:      cfg.Positions,
		minBet:         cfg.MinBet,
		raiseIncrement: cfg.RaiseIncrement,
		cards:          cfg.Cards,
		provider:       cfg.Provider,
		ranker:         cfg.Ranker,
		observer:       cfg.Observer,
		logger:         cfg.Logger.With("hand", cfg.Number),
		clock:          cfg.Clock,
		betting:        NewBettingRound(cfg.Positions),
		pot:            NewPot(),
	}, nil
}

func validatePositions(players []*Player, pos Positions) error {
	active := 0
	for _, p := range players {
		if p.Active {
			active++
		}
	}
	if active < 2 {
		return fmt.Errorf("%w: %d active", ErrTooFewPlayers, active)
	}

	n := len(players)
	for _, seat := range []int{pos.Dealer, pos.SmallBlind, pos.BigBlind} {
		if seat < 0 || seat >= n {
			return fmt.Errorf("%w: seat %d out of range", ErrInvalidPositions, seat)
		}
	}
	if !players[pos.SmallBlind].Active || !players[pos.BigBlind].Active {
		return fmt.Errorf("%w: blinds must be active players", ErrInvalidPositions)
	}
	if pos.SmallBlind == pos.BigBlind {
		return fmt.Errorf("%w: small and big blind share seat %d", ErrInvalidPositions, pos.BigBlind)
	}
	if active > 2 && (pos.Dealer == pos.SmallBlind || pos.Dealer == pos.BigBlind || !players[pos.Dealer].Active) {
		return fmt.Errorf("%w: dealer must be a distinct active seat", ErrInvalidPositions)
	}
	return nil
}

// Stage returns the current stage
func (h *Hand) Stage() Stage {
	return h.stage
}

// Pot returns the chips currently in the pot
func (h *Hand) Pot() int {
	return h.pot.Total
}

// CommunityCards returns a copy of the board
func (h *Hand) CommunityCards() []deck.Card {
	return append([]deck.Card(nil), h.community...)
}

// Play runs the hand to completion and settles the pot
func (h *Hand) Play() (*HandResult, error) {
	if h.played {
		return nil, errors.New("hand has already been played")
	}
	h.played = true
	h.startedAt = h.clock.Now()

	h.prepare()
	h.startChips = h.chipsInPlay()

	sb, bb, err := h.postBlinds()
	if err != nil {
		return nil, err
	}
	h.emit(HandStartEvent{
		HandNumber: h.number,
		Players:    h.snapshots(-1),
		Positions:  h.positions,
		SmallBlind: sb,
		BigBlind:   bb,
		Pot:        h.pot.Total,
		timestamp:  h.clock.Now(),
	})

	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}

	for stage := PreFlop; stage <= River; stage++ {
		if stage != PreFlop {
			if err := h.enterStage(stage); err != nil {
				return nil, err
			}
		}
		if err := h.runBettingRound(); err != nil {
			return nil, err
		}
		if h.inHandCount() <= 1 {
			break
		}
	}

	showdown := h.inHandCount() > 1
	var shown map[int][]deck.Card
	if showdown {
		shown, err = h.showdown()
		if err != nil {
			return nil, err
		}
	}

	result, err := h.settle(showdown)
	if err != nil {
		h.logger.Error("Failed to settle hand", "error", err)
		return nil, err
	}
	result.ShownCards = shown
	return result, nil
}

// prepare clears leftovers from a previous hand and hands out the roles
func (h *Hand) prepare() {
	for _, p := range h.players {
		p.ResetForHand()
	}
	if h.positions.Dealer != h.positions.SmallBlind && h.players[h.positions.Dealer].Active {
		h.players[h.positions.Dealer].Role = Dealer
	}
	h.players[h.positions.SmallBlind].Role = SmallBlind
	h.players[h.positions.BigBlind].Role = BigBlind
	h.stage = PreFlop
}

func (h *Hand) postBlinds() (int, int, error) {
	sb, err := h.postBlind(h.positions.SmallBlind, h.minBet/2)
	if err != nil {
		return 0, 0, fmt.Errorf("posting small blind: %w", err)
	}
	bb, err := h.postBlind(h.positions.BigBlind, h.minBet)
	if err != nil {
		return 0, 0, fmt.Errorf("posting big blind: %w", err)
	}
	h.betting.OpenWithBlinds(max(sb, bb))
	return sb, bb, nil
}

// postBlind commits a forced bet, going all in when the stack is short
func (h *Hand) postBlind(seat, amount int) (int, error) {
	p := h.players[seat]
	kind := Bet
	if p.Chips < amount {
		amount = p.Chips
		kind = AllIn
	}
	if err := p.Commit(amount); err != nil {
		return 0, err
	}
	if err := h.pot.Add(p.ID, amount); err != nil {
		return 0, err
	}

	action := Action{Kind: kind, Amount: amount, Round: h.round}
	h.actions = append(h.actions, ActionRecord{
		PlayerID: p.ID,
		Name:     p.Name,
		Stage:    PreFlop,
		Action:   action,
		Blind:    true,
	})
	h.logger.Debug("Blind posted", "player", p.Name, "role", p.Role, "amount", amount, "pot", h.pot.Total)
	return amount, nil
}

func (h *Hand) dealHoleCards() error {
	n := len(h.players)
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= n; i++ {
			p := h.players[(h.positions.Dealer+i)%n]
			if !p.Active {
				continue
			}
			c, err := h.cards.Deal()
			if err != nil {
				return fmt.Errorf("dealing hole cards: %w", err)
			}
			p.ReceiveCard(c)
		}
	}
	return nil
}

func (h *Hand) enterStage(stage Stage) error {
	for _, p := range h.players {
		p.ResetForStage()
	}
	h.betting.ResetForStage(stage)
	h.stage = stage

	if err := h.cards.Burn(); err != nil {
		return fmt.Errorf("burning card for %s: %w", stage, err)
	}
	for i := 0; i < stage.CommunityCards(); i++ {
		c, err := h.cards.Deal()
		if err != nil {
			return fmt.Errorf("dealing %s: %w", stage, err)
		}
		h.community = append(h.community, c)
	}

	h.logger.Debug("Stage started", "stage", stage, "board", h.community, "pot", h.pot.Total)
	h.emit(StageChangeEvent{
		HandNumber:     h.number,
		Stage:          stage,
		CommunityCards: h.CommunityCards(),
		Pot:            h.pot.Total,
		timestamp:      h.clock.Now(),
	})
	return nil
}

func (h *Hand) runBettingRound() error {
	h.round++
	if h.stage != PreFlop && h.withChipsCount() < 2 {
		h.logger.Debug("Skipping betting, players are all in", "stage", h.stage)
		return nil
	}

	for h.inHandCount() > 1 {
		seat := h.betting.Next(h.players)
		if seat < 0 {
			break
		}
		h.betting.RecordTurn(seat)

		p := h.players[seat]
		if !p.CanAct() {
			h.logger.Debug("Player is all in, passing", "player", p.Name)
			continue
		}

		options := h.betting.LegalActions(p, h.minBet, h.raiseIncrement)
		chosen := h.provider.ChooseAction(h.tableState(seat), options)
		action := h.normalize(p, chosen, options)
		if err := h.apply(seat, action); err != nil {
			return err
		}
	}
	return nil
}

// normalize turns a provider's choice into an action the engine can apply
func (h *Hand) normalize(p *Player, chosen Action, options Options) Action {
	if !options.Legal(chosen.Kind) {
		h.logger.Warn("Illegal action, folding instead", "player", p.Name, "action", chosen.Kind, "amount", chosen.Amount)
		return Action{Kind: Fold, Round: h.round}
	}

	amount := options.Get(chosen.Kind).Amount
	if (chosen.Kind == Bet || chosen.Kind == Raise) && chosen.Amount > amount {
		amount = chosen.Amount
		if amount-p.Bet > p.Chips {
			h.logger.Debug("Bet exceeds stack, going all in", "player", p.Name, "requested", amount, "chips", p.Chips)
			return Action{Kind: AllIn, Amount: p.Chips, Round: h.round}
		}
	}
	return Action{Kind: chosen.Kind, Amount: amount, Round: h.round}
}

func (h *Hand) apply(seat int, action Action) error {
	p := h.players[seat]

	var (
		moved int
		err   error
	)
	switch action.Kind {
	case Fold:
		p.Fold()
		h.betting.OnFold(h.players, seat)
	case Check:
	case Call:
		moved, err = p.CallTo(action.Amount)
	case Bet, Raise:
		moved, err = p.RaiseTo(action.Amount)
		if err == nil {
			h.betting.OnAggression(seat, p.Bet)
		}
	case AllIn:
		moved = p.Chips
		err = p.Commit(moved)
		if err == nil && p.Bet > h.betting.HighestBet {
			h.betting.OnAggression(seat, p.Bet)
		}
	}
	if err != nil {
		return fmt.Errorf("applying %s for %s: %w", action.Kind, p.Name, err)
	}
	if err := h.pot.Add(p.ID, moved); err != nil {
		return err
	}

	h.actions = append(h.actions, ActionRecord{
		PlayerID: p.ID,
		Name:     p.Name,
		Stage:    h.stage,
		Action:   action,
	})
	h.logger.Debug("Player action",
		"player", p.Name,
		"action", action.Kind,
		"amount", action.Amount,
		"moved", moved,
		"pot", h.pot.Total)

	h.emit(PlayerActionEvent{
		HandNumber: h.number,
		Player:     snapshot(p, false),
		Stage:      h.stage,
		Action:     action,
		Pot:        h.pot.Total,
		HighestBet: h.betting.HighestBet,
		timestamp:  h.clock.Now(),
	})
	return nil
}

// showdown asks the ranker for a winner and folds everybody else
func (h *Hand) showdown() (map[int][]deck.Card, error) {
	h.stage = Showdown

	contenders := make([]*Player, 0, len(h.players))
	shown := make(map[int][]deck.Card)
	for _, p := range h.players {
		if p.InHand() {
			contenders = append(contenders, p)
			shown[p.ID] = append([]deck.Card(nil), p.HoleCards...)
		}
	}

	winner, err := h.ranker.DetermineWinner(contenders, h.CommunityCards())
	if err != nil {
		return nil, fmt.Errorf("showdown: %w", err)
	}
	if winner == nil || !winner.InHand() {
		return nil, fmt.Errorf("showdown: %w: ranker picked a player not in the hand", ErrNoContender)
	}

	for _, p := range contenders {
		if p != winner {
			p.Fold()
		}
	}
	h.logger.Debug("Showdown", "winner", winner.Name, "contenders", len(contenders))
	return shown, nil
}

// settle awards the pot to the single remaining player and resets the
// per-hand state of every player
func (h *Hand) settle(showdown bool) (*HandResult, error) {
	var winner *Player
	for _, p := range h.players {
		if !p.InHand() {
			continue
		}
		if winner != nil {
			return nil, fmt.Errorf("%w: %s and %s are both still in", ErrNoContender, winner.Name, p.Name)
		}
		winner = p
	}
	if winner == nil {
		return nil, fmt.Errorf("%w: everybody folded", ErrNoContender)
	}

	if got := h.chipsInPlay(); got != h.startChips {
		return nil, fmt.Errorf("%w: started with %d, now %d", ErrChipConservation, h.startChips, got)
	}

	result := &HandResult{
		Number:        h.number,
		Winner:        winner,
		Showdown:      showdown,
		Stage:         h.stage,
		Community:     h.CommunityCards(),
		Actions:       h.actions,
		Contributions: h.pot.Contributions(),
		StartedAt:     h.startedAt,
	}

	won, err := h.pot.Award(winner)
	if err != nil {
		return nil, err
	}
	result.Pot = won

	h.logger.Debug("Pot awarded", "winner", winner.Name, "pot", won, "showdown", showdown)

	h.community = nil
	for _, p := range h.players {
		p.ResetForHand()
	}
	result.Duration = h.clock.Since(h.startedAt)

	h.emit(HandEndEvent{
		Result:    result,
		Players:   h.snapshots(-1),
		timestamp: h.clock.Now(),
	})
	return result, nil
}

func (h *Hand) tableState(acting int) TableState {
	return TableState{
		HandNumber:     h.number,
		Stage:          h.stage,
		Round:          h.round,
		Pot:            h.pot.Total,
		HighestBet:     h.betting.HighestBet,
		BetOpened:      h.betting.Opened,
		MinBet:         h.minBet,
		RaiseIncrement: h.raiseIncrement,
		CommunityCards: h.CommunityCards(),
		Players:        h.snapshots(acting),
		ActingSeat:     acting,
		Positions:      h.positions,
	}
}

func (h *Hand) snapshots(acting int) []PlayerState {
	states := make([]PlayerState, len(h.players))
	for i, p := range h.players {
		states[i] = snapshot(p, i == acting)
	}
	return states
}

func snapshot(p *Player, withCards bool) PlayerState {
	ps := PlayerState{
		ID:       p.ID,
		Name:     p.Name,
		Chips:    p.Chips,
		Bet:      p.Bet,
		TotalBet: p.TotalBet,
		Role:     p.Role,
		Folded:   p.Folded,
		Active:   p.Active,
		AllIn:    p.IsAllIn(),
	}
	if withCards {
		ps.HoleCards = append([]deck.Card(nil), p.HoleCards...)
	}
	return ps
}

func (h *Hand) emit(e Event) {
	if h.observer != nil {
		h.observer.HandEvent(e)
	}
}

func (h *Hand) inHandCount() int {
	count := 0
	for _, p := range h.players {
		if p.InHand() {
			count++
		}
	}
	return count
}

func (h *Hand) withChipsCount() int {
	count := 0
	for _, p := range h.players {
		if p.CanAct() {
			count++
		}
	}
	return count
}

// chipsInPlay returns every chip on the table: stacks plus the pot
func (h *Hand) chipsInPlay() int {
	total := h.pot.Total
	for _, p := range h.players {
		total += p.Chips
	}
	return total
}
