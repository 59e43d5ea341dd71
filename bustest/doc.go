// Package bustest provides test doubles for the sharedbus package: recording
// bus handles for every protocol and two BusMutex implementations.
//
// The fakes record every operation and can be armed with canned results and
// errors. The bus fakes additionally watch for overlapping operations — if
// two operations are ever in flight at once the fake latches an Interleaved
// flag, which is how arbitration tests detect a broken mutex.
//
// These are test doubles only. Production lock implementations are the
// application's to supply; see sharedbus.BusMutex.
package bustest
