// Package sm2 implements the SM-2 spaced repetition algorithm for a single
// item of knowledge.
//
// An Item is advanced one review at a time:
//
//	item := sm2.DefaultItem()
//	item = item.Review(sm2.Good)
//	days := item.Interval()
//
// Everything in this package is a pure function over values; callers own
// storage and any concurrency.
package sm2
