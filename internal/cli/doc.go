// Package cli provides the interactive NSS portal command line.
//
// App drives a state.Session from a read-eval-print loop. Each command maps
// to one session operation or navigation transition, so the prompt always
// shows the view the portal is in and who is logged in.
//
// Commands:
//   - register / login / logout / forgot / profile
//   - users / approve / reject (admin)
//   - events / addevent / signup / approvereg / eventstatus
//   - achieve / verifyach / cert / verifycert
//   - suggest / suggestions / review
//   - show / back / home / help / exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
