package plugin

import (
	"context"

	lua "github.com/yuin/gopher-lua"
)

// LuaModuleName is the module name plugin scripts require.
const LuaModuleName = "emojisweep"

// Loader is a gopher-lua module loader exposing the plugin's command
// surface to host plugin scripts:
//
//	local es = require("emojisweep")
//	es.sweep({ include = {"*.go"}, exclude = {"vendor/*"} })
//
// Install it with L.PreloadModule(plugin.LuaModuleName, system.Loader).
func (s *System) Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"sweep":   s.luaSweep,
		"running": s.luaRunning,
	})
	L.Push(mod)
	return 1
}

// luaSweep starts a sweep from Lua. Accepts an optional options table
// with "include" and "exclude" arrays of strings. Returns true, or
// false plus an error message.
func (s *System) luaSweep(L *lua.LState) int {
	var opts CommandOptions

	if L.GetTop() >= 1 {
		tbl := L.CheckTable(1)
		opts.Include = luaStringList(tbl.RawGetString("include"))
		opts.Exclude = luaStringList(tbl.RawGetString("exclude"))
	}

	if _, err := s.Sweep(context.Background(), opts); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(lua.LTrue)
	return 1
}

// luaRunning reports whether a sweep is in flight.
func (s *System) luaRunning(L *lua.LState) int {
	L.Push(lua.LBool(s.Running()))
	return 1
}

// luaStringList converts a Lua array of strings; non-string entries and
// non-table values are ignored.
func luaStringList(v lua.LValue) []string {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil
	}

	var out []string
	tbl.ForEach(func(_, item lua.LValue) {
		if s, ok := item.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}
