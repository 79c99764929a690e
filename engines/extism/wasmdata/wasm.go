// Package wasmdata builds small WASM modules for tests.
package wasmdata

// Entrypoint names exported by TestModule.
const (
	EntrypointMain = "main"
	EntrypointRun  = "run"
)

var magic = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

const (
	sectionType     = 0x01
	sectionFunction = 0x03
	sectionExport   = 0x07
	sectionCode     = 0x0a
)

// TestModule exports EntrypointMain and EntrypointRun, both of type () -> ().
var TestModule = Module(EntrypointMain, EntrypointRun)

// Module returns a valid WASM binary exporting one empty () -> () function per name,
// in the order given.
func Module(exports ...string) []byte {
	out := append([]byte{}, magic...)
	out = appendSection(out, sectionType, []byte{0x01, 0x60, 0x00, 0x00})
	if len(exports) == 0 {
		return out
	}

	funcs := appendULEB(nil, uint32(len(exports)))
	for range exports {
		funcs = append(funcs, 0x00)
	}
	out = appendSection(out, sectionFunction, funcs)

	exps := appendULEB(nil, uint32(len(exports)))
	for i, name := range exports {
		exps = appendULEB(exps, uint32(len(name)))
		exps = append(exps, name...)
		exps = append(exps, 0x00)
		exps = appendULEB(exps, uint32(i))
	}
	out = appendSection(out, sectionExport, exps)

	code := appendULEB(nil, uint32(len(exports)))
	for range exports {
		// body size, no locals, end
		code = append(code, 0x02, 0x00, 0x0b)
	}
	return appendSection(out, sectionCode, code)
}

func appendSection(out []byte, id byte, content []byte) []byte {
	out = append(out, id)
	out = appendULEB(out, uint32(len(content)))
	return append(out, content...)
}

func appendULEB(out []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}
