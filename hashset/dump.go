package hashset

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes every bucket on its own line in bucket order: "[ ]" for an
// empty bucket, "[k1] -> [k2] -> ..." otherwise. The output is meant for
// debugging and may change.
func (s *Set[K]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range s.table {
		if c.empty() {
			bw.WriteString("[ ]\n")
			continue
		}
		for n := c.head; n != c.tail; n = n.next {
			fmt.Fprintf(bw, "[%v]", n.key)
			if n.next != c.tail {
				bw.WriteString(" -> ")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
