package gtthread_test

import (
	"fmt"

	"github.com/kszr/gtthread"
)

// Example demonstrates creating a thread, running it to completion, and
// joining it to retrieve its result.
func Example() {
	sched, main := gtthread.New(0)
	sched.SetExit(func(int) {})

	doubler := sched.Create(func(self gtthread.Thread, arg any) any {
		return arg.(int) * 2
	}, 21)

	var status any
	if err := sched.Join(main, doubler, &status); err != nil {
		fmt.Println("join failed:", err)
		return
	}
	fmt.Println(status)
	// Output: 42
}
