// Package target describes what is being dumped: the platform, the physical
// media it ships on, the drive, the requested speed, and the caller's option
// bag.
//
// Systems and media types are closed sets keyed by stable string identifiers
// so that configuration files, CLI flags, and history rows can refer to them
// directly. Region decoding for disc serials lives here as well because more
// than one log format embeds the same serial scheme.
package target
