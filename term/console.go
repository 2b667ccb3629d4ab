package term

import (
	"fmt"
	"log"
)

// Console is the memory-mapped numeric output sink at port 0x00. Values
// written by the interpreter are queued and printed by a single drain
// goroutine so the interpreter never blocks on console I/O.
type Console struct {
	queue *BlockingQueue[uint16]
}

// NewConsole returns a Console ready to have its Run method started as a
// goroutine.
func NewConsole() *Console {
	return &Console{queue: NewBlockingQueue[uint16]()}
}

// Write enqueues v for the drain goroutine. Never blocks.
func (c *Console) Write(v uint16) {
	c.queue.Enqueue(v)
}

// Run drains the queue forever, printing each value as a decimal number.
// It is meant to run on its own goroutine for the lifetime of the program.
func (c *Console) Run() {
	for {
		v := c.queue.Dequeue()
		if _, err := fmt.Println(v); err != nil {
			log.Printf("term: console write failed: %s", err)
		}
	}
}
