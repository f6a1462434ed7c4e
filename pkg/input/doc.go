// Package input provides an interactive prompt-and-read primitive: it
// optionally writes a prompt, flushes it so that it's visible before input is
// awaited, and then blocks until a single line of text is available. Trailing
// line terminators ("\n" or "\r\n") are removed from the result, but all other
// content (including embedded whitespace) is preserved verbatim.
//
// Reaching the end of the input stream is not an error. A final line without a
// terminator is returned as-is, and an exhausted stream yields an empty string,
// which is indistinguishable from reading an empty line.
package input
