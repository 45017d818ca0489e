/*
Package apostille implements the apostille notarization scheme: binding
content to a ledger account in a verifiable and deterministic way.

A private apostille is an account derived from a seed and the signature of a
generator account

	seed -> SHA256 -> signature by the generator -> private key -> account

The same seed and generator always produce the same account. The derived
account can be handed to a group of owners by converting it into a multisig
account, see Apostille.Associate.

A public apostille is a checksum of the content sent as a message to a well
known sink address of the network, see PublicApostille.

Nothing in this package talks to the network. It prepares signed
transactions for a ledger client to announce.
*/
package apostille
