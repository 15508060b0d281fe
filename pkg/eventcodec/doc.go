/*
Package eventcodec maps between the wire representation of an event and
the field set the stream store backend holds for one entry, and handles
the entry ID's textual encoding.

# Entry ID format

An entry ID is two integers rendered as `<microseconds>-<sequence>`,
where `<microseconds>` is the wall-clock time of the append in
microseconds-since-epoch and `<sequence>` disambiguates entries
appended within the same microsecond. Ordering is lexicographic on the
two integer components, which this package treats as the single source
of truth: it never reorders by anything other than the ID itself.

IDs read back from the backend are preserved bit-for-bit so that a
cursor captured from one read survives being passed into a later
`tail` call.
*/
package eventcodec
