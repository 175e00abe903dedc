package stringify

// IndentationSize is the amount of spaces that nested values are indented with.
const IndentationSize = 4
