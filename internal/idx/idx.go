// Package idx issues client-generated temporary identifiers for optimistic
// records. Ids combine a session-unique random component with a monotonic
// counter, so two uploads started in the same instant can never collide.
package idx

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

const tempPrefix = "tmp-"

// Generator issues temporary ids unique within one client session.
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	session string
	counter atomic.Uint64
}

func NewGenerator() *Generator {
	return &Generator{session: uuid.NewString()}
}

// TempID returns the next temporary id. Safe for concurrent use.
func (g *Generator) TempID() string {
	n := g.counter.Add(1)
	return fmt.Sprintf("%s%s-%d", tempPrefix, g.session, n)
}

// IsTemp reports whether id was produced by a Generator.
func IsTemp(id string) bool {
	return strings.HasPrefix(id, tempPrefix)
}
