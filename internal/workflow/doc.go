// Package workflow implements the publication and gating logic on top of
// the gateway.
//
// Gates decide what the current session may do: film creation requires the
// proprio_film role, cinema creation the proprio_cinema role, and
// publishing a programmation requires owning the cinema (numeric user id
// equality).
//
// [ProgrammationForm] shapes a programmation submission: it drops
// incomplete time slots, coerces ids, and rejects anything that does not
// carry exactly three complete creneaux before a single byte goes on the
// wire. [Engine] runs the read and publish operations, including the
// fan-out load of a cinema page (details plus the full film list, joined
// before rendering) and the refetch after every successful mutation.
package workflow
