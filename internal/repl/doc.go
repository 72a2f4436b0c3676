// Package repl implements the interactive date-query loop.
//
// The loop reads one line at a time: blank lines reprompt, the exit tokens
// quit/exit/q end the loop, and anything else is validated as an ISO date
// before it reaches the session. Each outcome kind gets its own diagnostic
// so a non-trading day reads differently from a date with too little
// history.
package repl
