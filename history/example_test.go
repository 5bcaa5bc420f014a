package history_test

import (
	"fmt"

	"github.com/tsunaou/polysi-go/history"
)

// ExampleHistory demonstrates the read-your-writes shape: one session, one
// transaction that writes x then reads it back before committing.
func ExampleHistory() {
	h := history.NewHistory()
	s, _ := h.AddSession(1)
	t, _ := h.AddTransaction(s, 1)
	_ = t.Write("x", "1")
	_ = t.Read("x", "1")
	t.Commit()

	if err := h.Freeze(); err != nil {
		fmt.Println("freeze failed:", err)
		return
	}

	fmt.Println(h.Len(), "transaction(s),", len(t.Events), "event(s)")
	// Output: 1 transaction(s), 2 event(s)
}
