package script

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// installAPI registers log() and the editor table.
func (e *Engine) installAPI() {
	e.L.SetGlobal("log", e.L.NewFunction(e.luaLog))

	mod := e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"status":     e.luaStatus,
		"mode":       e.luaMode,
		"cursor":     e.luaCursor,
		"line":       e.luaLine,
		"line_count": e.luaLineCount,
		"file":       e.luaFile,
	})
	e.L.SetGlobal("editor", mod)
}

func (e *Engine) luaLog(L *lua.LState) int {
	parts := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	e.logger.Info("lua: %s", strings.Join(parts, " "))
	return 0
}

func (e *Engine) luaStatus(L *lua.LState) int {
	if L.GetTop() == 0 {
		L.Push(lua.LString(e.host.Status()))
		return 1
	}
	e.host.SetStatus(L.ToStringMeta(L.Get(1)).String())
	return 0
}

func (e *Engine) luaMode(L *lua.LState) int {
	L.Push(lua.LString(e.host.Mode().Name()))
	return 1
}

func (e *Engine) luaCursor(L *lua.LState) int {
	pos := e.host.Cursor()
	L.Push(lua.LNumber(pos.Row + 1))
	L.Push(lua.LNumber(pos.Col + 1))
	return 2
}

func (e *Engine) luaLine(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 1 || n > e.host.LineCount() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(e.host.Line(n - 1)))
	return 1
}

func (e *Engine) luaLineCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.host.LineCount()))
	return 1
}

func (e *Engine) luaFile(L *lua.LState) int {
	path := e.host.FilePath()
	if path == "" {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(path))
	return 1
}
