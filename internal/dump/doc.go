/*
Package dump persists states of the deployed PeerLedger contracts.

A dump is a snapshot of contract states and their storages taken at the
particular block of the particular network. Dumps are stored in the file
system using human-readable encoding and can be inspected or loaded into the
test chain later.

Each dump consists of two files located in the same directory:

	'<label>-<block>-contracts.json': JSON array of contracts' states
	'<label>-<block>-storage.csv': CSV of contracts' storages

Storage CSV records are 'name,key,value' where name stands for contract name
and binary key-value are base64-encoded.
*/
package dump
