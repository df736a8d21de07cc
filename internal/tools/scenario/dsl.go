// Package scenario executes Lua scenario scripts against an in-process
// stock round. Scripts build a Scenario value through a small DSL and the
// runner replays its steps: open a game from a title, take player turns,
// submit trading actions, and assert on the resulting state.
package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is an ordered list of steps produced by a Lua script.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one scripted instruction with its raw arguments.
type Step struct {
	Kind string
	Args map[string]any
}

// LoadScenarioFromFile runs a Lua script and returns the Scenario it
// builds. The script must end with `return scene`.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	registerScenarioType(state)
	registerScenarioConstructor(state)
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "game", Function: scenarioGame},
	{Name: "turn", Function: scenarioTurn},
	{Name: "par", Function: scenarioPar},
	{Name: "buy", Function: scenarioBuy},
	{Name: "sell", Function: scenarioSell},
	{Name: "buy_company", Function: scenarioBuyCompany},
	{Name: "pass", Function: scenarioPass},
	{Name: "program_buy", Function: scenarioProgramBuy},
	{Name: "auto", Function: scenarioAuto},
	{Name: "end_stock_round", Function: scenarioEndStockRound},
	{Name: "expect_actions", Function: scenarioExpectActions},
	{Name: "expect_cash", Function: scenarioExpectCash},
	{Name: "expect_price", Function: scenarioExpectPrice},
	{Name: "expect_floated", Function: scenarioExpectFloated},
	{Name: "expect_log", Function: scenarioExpectLog},
}

func scenarioGame(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	if requiredString(data, "title") == "" && requiredString(data, "file") == "" {
		lua.Errorf(state, "game title or file is required")
	}
	if _, ok := data["players"]; !ok {
		lua.Errorf(state, "game players are required")
	}
	appendStep(scenario, "game", data)
	return 0
}

func scenarioTurn(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	appendStep(scenario, "turn", map[string]any{"player": player})
	return 0
}

func scenarioPar(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "player", "corporation")
	if _, ok := data["price"]; !ok {
		lua.Errorf(state, "par price is required")
	}
	appendStep(scenario, "par", data)
	return 0
}

func scenarioBuy(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "player", "corporation")
	appendStep(scenario, "buy", data)
	return 0
}

func scenarioSell(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "player", "corporation")
	appendStep(scenario, "sell", data)
	return 0
}

func scenarioBuyCompany(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "player", "company")
	appendStep(scenario, "buy_company", data)
	return 0
}

func scenarioPass(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	appendStep(scenario, "pass", map[string]any{"player": player})
	return 0
}

func scenarioProgramBuy(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "player", "corporation")
	appendStep(scenario, "program_buy", data)
	return 0
}

func scenarioAuto(state *lua.State) int {
	scenario := checkScenario(state)
	player := lua.CheckString(state, 2)
	appendStep(scenario, "auto", map[string]any{"player": player})
	return 0
}

func scenarioEndStockRound(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "end_stock_round", nil)
	return 0
}

func scenarioExpectActions(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "player")
	if _, ok := data["actions"]; !ok {
		lua.Errorf(state, "expected actions list is required")
	}
	appendStep(scenario, "expect_actions", data)
	return 0
}

func scenarioExpectCash(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "entity")
	if _, ok := data["amount"]; !ok {
		lua.Errorf(state, "expected cash amount is required")
	}
	appendStep(scenario, "expect_cash", data)
	return 0
}

func scenarioExpectPrice(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	requireFields(state, data, "corporation")
	if _, ok := data["price"]; !ok {
		lua.Errorf(state, "expected share price is required")
	}
	appendStep(scenario, "expect_price", data)
	return 0
}

func scenarioExpectFloated(state *lua.State) int {
	scenario := checkScenario(state)
	corporation := lua.CheckString(state, 2)
	appendStep(scenario, "expect_floated", map[string]any{"corporation": corporation})
	return 0
}

func scenarioExpectLog(state *lua.State) int {
	scenario := checkScenario(state)
	text := lua.CheckString(state, 2)
	appendStep(scenario, "expect_log", map[string]any{"contains": text})
	return 0
}

func requireFields(state *lua.State, data map[string]any, fields ...string) {
	for _, field := range fields {
		if requiredString(data, field) == "" {
			lua.Errorf(state, "%s is required", field)
		}
	}
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) int {
	if scenario == nil {
		return -1
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
	return len(scenario.Steps) - 1
}
