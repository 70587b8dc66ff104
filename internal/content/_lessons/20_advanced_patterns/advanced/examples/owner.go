// State owned by a single goroutine: a map served over channels, with
// periodic maintenance multiplexed into the same select loop.
package main

import (
	"fmt"
	"time"
)

type getReq struct {
	key   string
	reply chan int
}

type counterOwner struct {
	incs  chan string
	gets  chan getReq
	done  chan struct{}
	snaps int
}

func newCounterOwner() *counterOwner {
	o := &counterOwner{
		incs: make(chan string, 16),
		gets: make(chan getReq),
		done: make(chan struct{}),
	}
	go o.loop()
	return o
}

// loop is the only goroutine that ever touches counts: no mutex, no race.
func (o *counterOwner) loop() {
	counts := map[string]int{}
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case key := <-o.incs:
			counts[key]++
		case req := <-o.gets:
			req.reply <- counts[req.key]
		case <-tick.C:
			o.snaps++ // maintenance shares the thread of control with serving
		case <-o.done:
			fmt.Printf("owner exiting: %d keys, %d maintenance ticks\n",
				len(counts), o.snaps)
			return
		}
	}
}

func (o *counterOwner) Inc(key string) { o.incs <- key }

func (o *counterOwner) Get(key string) int {
	reply := make(chan int)
	o.gets <- getReq{key: key, reply: reply}
	return <-reply
}

func (o *counterOwner) Close() { close(o.done) }

func main() {
	owner := newCounterOwner()

	for i := 0; i < 100; i++ {
		owner.Inc("requests")
		if i%10 == 0 {
			owner.Inc("checkpoints")
		}
	}

	fmt.Println("requests:   ", owner.Get("requests"))
	fmt.Println("checkpoints:", owner.Get("checkpoints"))
	fmt.Println("missing:    ", owner.Get("nope"))

	time.Sleep(60 * time.Millisecond) // let a few maintenance ticks land
	owner.Close()
	time.Sleep(10 * time.Millisecond) // give loop time to print its exit line
}
