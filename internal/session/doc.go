// Package session implements the FriCAS session driver: child process
// lifecycle, asynchronous demultiplexing of its combined output stream,
// prompt detection under a deadline, and extraction of the clean
// response text belonging to each submitted line.
//
// Two pieces compose in a strict producer/consumer relationship: a
// reader goroutine forwarding raw bytes on a channel, and the Session,
// which consumes them inside a sleep-poll prompt-wait. Engine output is
// treated as opaque text to be delimited, never interpreted.
package session
