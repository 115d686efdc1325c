package x509name

/*
evt.go contains EventType constants which are (only) used for
debug logging, as selected through the [EnvDebugVar] environment
variable or the [EnableDebug] function.
*/

/*
EventType describes a specific category of debug event. See the
[EventType] constants for a full list and descriptions.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //   1: Called-function begin
	EventInfo                             //   2: Interim function event
	EventExit                             //   4: Called function exit
	EventParse                            //   8: DN string parsing
	EventCodec                            //  16: DER encoding/decoding
	EventConstrains                       //  32: NameValue relation checks
	EventSubtree                          //  64: GeneralSubtrees algebra
	EventMerge                            // 128: NameConstraints merging
	EventVerify                           // 256: NameConstraints verification
)

var eventNames = map[EventType]string{
	EventAll:        "all",
	EventNone:       "none",
	EventEnter:      "enter",
	EventInfo:       "info",
	EventExit:       "exit",
	EventParse:      "parse",
	EventCodec:      "codec",
	EventConstrains: "constrains",
	EventSubtree:    "subtree",
	EventMerge:      "merge",
	EventVerify:     "verify",
}

/*
String returns the lowercase name of a single [EventType] bit, or the
empty string if unknown.
*/
func (r EventType) String() string { return eventNames[r] }

/*
parseEventTypes returns the [EventType] mask described by the comma
separated names or decimal values in s. Unknown names are ignored.
*/
func parseEventTypes(s string) (ev EventType) {
	for _, f := range split(s, `,`) {
		f = lc(trimS(f))
		if n, err := puint(f, 10, 16); err == nil {
			ev |= EventType(n)
			continue
		}
		for k, v := range eventNames {
			if v == f {
				ev |= k
				break
			}
		}
	}
	return
}
