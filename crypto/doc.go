/*
Package crypto implements the account primitives of the NEM ledgers: key
pairs, signatures and addresses.

Two generations of the ledger cryptography are supported. Both are Ed25519,
but instantiated with different hash functions and private key encodings.
Which one is used is decided by the network type only, see StrategyFor.
*/
package crypto
