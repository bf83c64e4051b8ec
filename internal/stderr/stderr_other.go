//go:build !unix

package stderr

var messages = make(chan string)

// Messages never delivers: nothing is captured on this platform.
func Messages() <-chan string { return messages }

func Start() error { return nil }

func Stop() {}
