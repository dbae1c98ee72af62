package types

// Metadata is the free-form string-to-string mapping contributed by the
// "metadata" capability. It is exposed as a raw map; callers insert, look
// up, and delete entries directly.
type Metadata map[string]string
