package trace

import "time"

// Kind is what an event marks: a span opening, a span closing or an instant.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string { return lookupName(kindNames[:], int(k)) }

// Scope is the granularity of an event; coarser scopes have lower values
// and Level.ShouldEmit cuts at a maximum scope.
type Scope uint8

const (
	ScopeDriver  Scope = iota + 1 // a whole command: decode, repl
	ScopePass                     // a batch stage: load, scan, cache lookup
	ScopeFile                     // one input file or one stream
	ScopeLiteral                  // один литерал, самый подробный уровень
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopePass: "pass", ScopeFile: "file", ScopeLiteral: "literal"}

func (s Scope) String() string { return lookupName(scopeNames[:], int(s)) }

// lookupName: пустое имя или выход за таблицу дают "unknown".
func lookupName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return "unknown"
}

// Event is one trace record. Tracers stamp Seq when they accept it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // zero for points
	ParentID uint64 // zero at the root
	Name     string // "decode", "scan:lits.str", "literal"
	Detail   string
	Extra    map[string]string // "error" marks an error point
}
