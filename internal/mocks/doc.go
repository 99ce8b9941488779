// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused across packages.
//
// Usage:
//
//	import "github.com/phrazzld/covercraft/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := mocks.NewMockGeneratorWithText("Dear Hiring Manager...")
//
//	    // Use the mock in your test...
//	    assert.Equal(t, 1, gen.CallCount())
//	}
package mocks
