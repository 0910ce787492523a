package term

// Count returns the number of Nodes interned in s so far. A diagnostic: the
// derivative closure keeps interning new terms for as long as Compile
// explores it, so nothing may size a fixed-capacity structure from a Count()
// snapshot taken before exploration finishes (see dfa.Compile's doc comment).
func (s *Store) Count() int32 { return s.nextID }
