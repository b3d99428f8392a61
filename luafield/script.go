package luafield

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/typedtext"
)

// Script global names.
const (
	ValidateName = "validate"
	ParseName    = "parse"
)

// Errors returned by script loading and execution.
var (
	ErrNoParseFunction = errors.New("script does not define a parse function")
	ErrNotFunction     = errors.New("script global is not a function")
	ErrParseFailed     = errors.New("lua parse failed")
	ErrScriptClosed    = errors.New("script is closed")
)

// Script owns a sandboxed Lua interpreter holding a field's validate and
// parse functions. Fields built from the same Script share the interpreter,
// so they must all be driven from the same goroutine.
type Script struct {
	L        *lua.LState
	validate *lua.LFunction
	parse    *lua.LFunction
	closed   bool
}

// Load compiles and runs source on a fresh sandboxed interpreter and
// captures the validate and parse globals. The caller must Close the Script
// when the fields built from it are no longer in use.
func Load(source string) (*Script, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // Open selectively below
	})
	openSafeLibraries(L)

	s := &Script{L: L}

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}

	parse := L.GetGlobal(ParseName)
	if parse == lua.LNil {
		L.Close()
		return nil, ErrNoParseFunction
	}
	fn, ok := parse.(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFunction, ParseName)
	}
	s.parse = fn

	if v := L.GetGlobal(ValidateName); v != lua.LNil {
		fn, ok := v.(*lua.LFunction)
		if !ok {
			L.Close()
			return nil, fmt.Errorf("%w: %s", ErrNotFunction, ValidateName)
		}
		s.validate = fn
	}

	return s, nil
}

// Close shuts down the interpreter. Fields built from this Script reject
// all edits and report ErrScriptClosed afterwards.
func (s *Script) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// Field builds a typedtext state backed by the script's functions. The
// value type is lua.LValue; callers convert with the usual gopher-lua
// helpers (lua.LVAsNumber, lua.LVAsString, ...).
func (s *Script) Field(opts ...typedtext.Option[lua.LValue]) *typedtext.State[lua.LValue] {
	opts = append([]typedtext.Option[lua.LValue]{
		typedtext.WithValidator[lua.LValue](s.validateFunc()),
	}, opts...)
	return typedtext.New(s.parseFunc(), opts...)
}

// validateFunc bridges the Lua validate function to a ValidateFunc. A
// missing validator accepts everything; a raising validator rejects.
func (s *Script) validateFunc() typedtext.ValidateFunc {
	if s.validate == nil {
		return typedtext.AllowAll
	}
	return func(current, insertion string, index int) bool {
		if s.closed {
			return false
		}
		s.L.Push(s.validate)
		s.L.Push(lua.LString(current))
		s.L.Push(lua.LString(insertion))
		s.L.Push(lua.LNumber(index))
		if err := s.L.PCall(3, 1, nil); err != nil {
			return false
		}
		ret := s.L.Get(-1)
		s.L.Pop(1)
		return lua.LVAsBool(ret)
	}
}

// parseFunc bridges the Lua parse function to a ParseFunc. The Lua side
// reports failure by returning a second value or raising; both become a Go
// error wrapping ErrParseFailed.
func (s *Script) parseFunc() typedtext.ParseFunc[lua.LValue] {
	return func(text string) (lua.LValue, error) {
		if s.closed {
			return lua.LNil, ErrScriptClosed
		}
		s.L.Push(s.parse)
		s.L.Push(lua.LString(text))
		if err := s.L.PCall(1, 2, nil); err != nil {
			return lua.LNil, fmt.Errorf("%w: %v", ErrParseFailed, err)
		}
		errv := s.L.Get(-1)
		val := s.L.Get(-2)
		s.L.Pop(2)

		if errv != lua.LNil {
			return lua.LNil, fmt.Errorf("%w: %s", ErrParseFailed, lua.LVAsString(errv))
		}
		if val == lua.LNil {
			return lua.LNil, ErrParseFailed
		}
		return val, nil
	}
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Intentionally not opened: io, os, debug, package.
}
