/*
Package observability provides tools for monitoring rounds.

It includes prometheus metrics bound to the round lifecycle hooks, and helpers to
combine several hook sets (metrics, debug logging) into one.
*/
package observability
