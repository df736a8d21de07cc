package scenario

import (
	"fmt"
	"slices"
	"strings"

	"github.com/railbaron/stockround/internal/catalog"
	"github.com/railbaron/stockround/internal/game"
	"github.com/railbaron/stockround/internal/stock"
)

func (r *Runner) runStep(state *scenarioState, step Step) error {
	switch step.Kind {
	case "game":
		return r.runGame(state, step.Args)
	case "turn":
		return r.runTurn(state, step.Args)
	case "par":
		return r.runPar(state, step.Args)
	case "buy":
		return r.runBuy(state, step.Args)
	case "sell":
		return r.runSell(state, step.Args)
	case "buy_company":
		return r.runBuyCompany(state, step.Args)
	case "pass":
		return r.runPass(state, step.Args)
	case "program_buy":
		return r.runProgramBuy(state, step.Args)
	case "auto":
		return r.runAuto(state, step.Args)
	case "end_stock_round":
		return r.runEndStockRound(state)
	case "expect_actions":
		return r.runExpectActions(state, step.Args)
	case "expect_cash":
		return r.runExpectCash(state, step.Args)
	case "expect_price":
		return r.runExpectPrice(state, step.Args)
	case "expect_floated":
		return r.runExpectFloated(state, step.Args)
	case "expect_log":
		return r.runExpectLog(state, step.Args)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) runGame(state *scenarioState, args map[string]any) error {
	names := stringList(args, "players")
	if len(names) == 0 {
		return fmt.Errorf("game needs at least one player")
	}

	var title *catalog.Title
	var err error
	if file := optionalString(args, "file", ""); file != "" {
		title, err = catalog.Load(file)
	} else {
		title, err = catalog.LoadBuiltin(requiredString(args, "title"))
	}
	if err != nil {
		return err
	}

	setup, err := title.Build(names)
	if err != nil {
		return err
	}

	state.setup = setup
	state.round = stock.NewRound()
	state.step = stock.NewStep(setup.State, setup.Policy, state.round, setup.Log)
	state.players = map[string]*game.Player{}
	state.corporations = map[string]*game.Corporation{}
	state.companies = map[string]*game.Company{}
	state.programs = map[string]*stock.BuyProgram{}
	state.active = nil

	for _, p := range setup.Players {
		state.players[p.Name()] = p
	}
	for _, c := range setup.State.Corporations() {
		state.corporations[c.Name()] = c
	}
	for _, c := range setup.State.Companies() {
		state.companies[c.Name()] = c
	}
	return nil
}

func (r *Runner) runTurn(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	state.step.Setup(player)
	state.active = player
	return nil
}

func (r *Runner) runPar(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	corp, err := resolveCorporation(state, args)
	if err != nil {
		return err
	}
	price, ok := readInt(args, "price")
	if !ok {
		return fmt.Errorf("par price is required")
	}
	ensureTurn(state, player)
	return state.step.Process(stock.NewPar(player, corp, price))
}

func (r *Runner) runBuy(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	corp, err := resolveCorporation(state, args)
	if err != nil {
		return err
	}
	bundle, err := buyableBundle(state, corp, args)
	if err != nil {
		return err
	}
	ensureTurn(state, player)
	return state.step.Process(stock.NewBuyShares(player, bundle))
}

func (r *Runner) runSell(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	corp, err := resolveCorporation(state, args)
	if err != nil {
		return err
	}
	count := optionalInt(args, "shares", 1)
	ensureTurn(state, player)

	for _, bundle := range state.setup.State.BundlesForCorporation(player, corp) {
		if bundle.NumShares() == count {
			return state.step.Process(stock.NewSellShares(player, bundle))
		}
	}
	return fmt.Errorf("%s holds no %d-share bundle of %s", player.Name(), count, corp.Name())
}

func (r *Runner) runBuyCompany(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	name := requiredString(args, "company")
	company, ok := state.companies[name]
	if !ok {
		return fmt.Errorf("unknown company %q", name)
	}
	price := optionalInt(args, "price", company.Value())
	ensureTurn(state, player)
	return state.step.Process(stock.NewBuyCompany(player, company, price))
}

func (r *Runner) runPass(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	ensureTurn(state, player)
	return state.step.Process(stock.NewPass(player))
}

func (r *Runner) runProgramBuy(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	corp, err := resolveCorporation(state, args)
	if err != nil {
		return err
	}
	state.programs[player.Name()] = &stock.BuyProgram{
		Corporation: corp,
		UntilFloat:  optionalBool(args, "until_float", false),
	}
	return nil
}

func (r *Runner) runAuto(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	program, ok := state.programs[player.Name()]
	if !ok {
		return fmt.Errorf("%s has no buy program", player.Name())
	}
	ensureTurn(state, player)

	for _, action := range state.step.AutoActions(player, program) {
		if disable, ok := action.(*stock.ProgramDisable); ok {
			delete(state.programs, player.Name())
			r.logf("%s buy program disabled: %s", player.Name(), disable.Reason)
			continue
		}
		if err := state.step.Process(action); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runEndStockRound(state *scenarioState) error {
	if state.setup == nil {
		return fmt.Errorf("no game in progress")
	}
	state.setup.State.MarkFirstStockRoundOver()
	state.active = nil
	return nil
}

func (r *Runner) runExpectActions(state *scenarioState, args map[string]any) error {
	player, err := resolvePlayer(state, args)
	if err != nil {
		return err
	}
	want := stringList(args, "actions")
	ensureTurn(state, player)

	kinds := state.step.Actions(player)
	got := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		got = append(got, string(kind))
	}
	if !slices.Equal(got, want) {
		return r.assertions.Failf("%s actions = %v, want %v", player.Name(), got, want)
	}
	return nil
}

func (r *Runner) runExpectCash(state *scenarioState, args map[string]any) error {
	entity, err := resolveEntity(state, args)
	if err != nil {
		return err
	}
	amount, ok := readInt(args, "amount")
	if !ok {
		return fmt.Errorf("expected cash amount is required")
	}
	if got := entity.Cash(); got != amount {
		return r.assertions.Failf("%s cash = %d, want %d", entity.Name(), got, amount)
	}
	return nil
}

func (r *Runner) runExpectPrice(state *scenarioState, args map[string]any) error {
	corp, err := resolveCorporation(state, args)
	if err != nil {
		return err
	}
	price, ok := readInt(args, "price")
	if !ok {
		return fmt.Errorf("expected share price is required")
	}
	if got := corp.SharePrice(); got != price {
		return r.assertions.Failf("%s share price = %d, want %d", corp.Name(), got, price)
	}
	return nil
}

func (r *Runner) runExpectFloated(state *scenarioState, args map[string]any) error {
	corp, err := resolveCorporation(state, args)
	if err != nil {
		return err
	}
	if !corp.Floated() {
		return r.assertions.Failf("%s is not floated", corp.Name())
	}
	return nil
}

func (r *Runner) runExpectLog(state *scenarioState, args map[string]any) error {
	if state.setup == nil {
		return fmt.Errorf("no game in progress")
	}
	want := requiredString(args, "contains")
	for _, entry := range state.setup.Log.Entries() {
		if strings.Contains(entry.Text, want) {
			return nil
		}
	}
	return r.assertions.Failf("log has no entry containing %q", want)
}
