// Package paginate splits an ordered list of placement records into pages.
//
// Two drivers are provided. [Fixed] uses one layout for every page and
// produces ceil(N/C) pages for N items and a capacity of C. [Greedy] is for
// items of varying height, such as card wrappers whose height depends on
// the stack they hold: each page starts with the capacity guaranteed by the
// tallest item of the whole list and then admits one more item at a time as
// long as a layout for the tallest item on the page still has room.
//
// Both drivers keep input order. An item never moves to an earlier page to
// fill a gap.
//
// Every page keeps its own layout, but a printed document centers all pages
// with the same margins; [Result.Margins] returns the most restrictive pair.
package paginate
