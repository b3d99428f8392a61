// Package luafield builds typedtext states whose validator and parser are
// written in Lua, so that field behavior can be configured or shipped as
// data rather than compiled in.
//
// A script defines up to two global functions:
//
//	function validate(current, insertion, index)
//	    return true
//	end
//
//	function parse(text)
//	    local n = tonumber(text)
//	    if n == nil then
//	        return nil, "not a number"
//	    end
//	    return n
//	end
//
// parse is required; validate is optional and defaults to accepting
// everything. parse reports failure by returning a second value (the error
// message) or by raising an error. A validator that raises is treated as a
// rejection. The core's no-fault contract holds either way: script problems
// surface as data, never as panics.
//
// Scripts run on a sandboxed interpreter with only the base, table, string,
// and math libraries open; io, os, debug, and package stay closed.
//
// IMPORTANT: gopher-lua's LState is not goroutine-safe, and neither is a
// typedtext state. A Script and every field built from it must be driven
// from a single goroutine, which matches how a UI event loop uses them.
package luafield
