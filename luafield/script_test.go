package luafield

import (
	"errors"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

const numberScript = `
function validate(current, insertion, index)
	return insertion:match("^[0-9]*$") ~= nil
end

function parse(text)
	local n = tonumber(text)
	if n == nil then
		return nil, "not a number"
	end
	return n
end
`

func TestLoadAndField(t *testing.T) {
	script, err := Load(numberScript)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer script.Close()

	s := script.Field()

	if !s.Insert("42", 0) {
		t.Fatal("digits should be accepted")
	}
	v, ok := s.Value()
	if !ok {
		t.Fatalf("expected a value, got error %v", s.LastError())
	}
	if lua.LVAsNumber(v) != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestLuaValidatorRejects(t *testing.T) {
	script, err := Load(numberScript)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer script.Close()

	s := script.Field()

	if s.Insert("x", 0) {
		t.Error("non-digit should be rejected by the Lua validator")
	}
	if s.Text() != "" {
		t.Errorf("text changed on rejection: %q", s.Text())
	}
}

func TestLuaParseError(t *testing.T) {
	script, err := Load(numberScript)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer script.Close()

	s := script.Field()
	s.SetText("not a number")

	if _, ok := s.Value(); ok {
		t.Error("unparseable text should not produce a value")
	}
	if !errors.Is(s.LastError(), ErrParseFailed) {
		t.Errorf("expected ErrParseFailed, got %v", s.LastError())
	}
}

func TestLuaParseRaises(t *testing.T) {
	script, err := Load(`
function parse(text)
	error("boom")
end
`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer script.Close()

	s := script.Field()
	s.SetText("anything")

	if !errors.Is(s.LastError(), ErrParseFailed) {
		t.Errorf("a raising parse must surface as ErrParseFailed, got %v", s.LastError())
	}
}

func TestLuaValidatorRaisesIsRejection(t *testing.T) {
	script, err := Load(`
function validate(current, insertion, index)
	error("boom")
end

function parse(text)
	return text
end
`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer script.Close()

	s := script.Field()

	if s.Insert("x", 0) {
		t.Error("a raising validator must reject, not fault")
	}
}

func TestLoadMissingParse(t *testing.T) {
	_, err := Load(`x = 1`)
	if !errors.Is(err, ErrNoParseFunction) {
		t.Errorf("expected ErrNoParseFunction, got %v", err)
	}
}

func TestLoadParseNotFunction(t *testing.T) {
	_, err := Load(`parse = "nope"`)
	if !errors.Is(err, ErrNotFunction) {
		t.Errorf("expected ErrNotFunction, got %v", err)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load(`function parse(`)
	if err == nil {
		t.Error("expected a load error")
	}
}

func TestSandbox(t *testing.T) {
	script, err := Load(`
function parse(text)
	if io ~= nil or os ~= nil then
		return nil, "sandbox breached"
	end
	return text
end
`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defer script.Close()

	s := script.Field()
	s.SetText("hello")

	if _, ok := s.Value(); !ok {
		t.Errorf("sandboxed libraries leaked: %v", s.LastError())
	}
}

func TestClosedScript(t *testing.T) {
	script, err := Load(numberScript)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	s := script.Field()
	script.Close()

	if s.Insert("1", 0) {
		t.Error("a closed script must reject edits")
	}
	s.SetText("42")
	if !errors.Is(s.LastError(), ErrScriptClosed) {
		t.Errorf("expected ErrScriptClosed, got %v", s.LastError())
	}
}
