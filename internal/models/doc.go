// Package models defines the domain types exchanged with the cinema listing service.
//
// The package contains two categories of types:
//
// 1. Read shapes: snapshots of server-owned records, decoded as-is
//   - [Film] : film summary and detail (detail carries programmations)
//   - [Cinema] : cinema summary and detail
//   - [Programmation] : a scheduled run with denormalized display fields
//   - [Creneau] : one weekly recurring time slot (day + start time)
//
// 2. Write shapes: locally assembled request bodies for publication
//   - [NewFilm], [NewCinema], [NewProgrammation]
//
// [Session] is the only client-owned type: the persisted record of the
// authenticated user. The remote service owns everything else; the client
// holds disposable snapshots with no caching beyond refetch-after-mutation.
package models
