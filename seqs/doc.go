/*
Package seqs provides position-aware windowing over Go iterators (iter.Seq).

It is the core used by every position-indexed computation in strider:

  - **Rolling windows**: [RollingWindow] slides a fixed-size window by an
    arbitrary step and reports each window's [Window.Left] and [Window.Right]
    bounds. At the trailing edge the window shrinks instead of silently
    dropping a short remainder.
  - **Scoring**: [Centered] maps a per-window score function over the windows
    and keeps each value next to its window, so results can be tabulated by
    [Window.Center].
  - **Concurrency**: [ParallelScore] spreads slow score calls (external
    folding programs, scripts) over a worker pool while preserving window order.

# Windowing

	windows, err := seqs.RollingWindow(slices.Values(seq), 80, 1)
	if err != nil {
		return err // size < 1 or step < 1
	}
	for w := range windows {
		fmt.Println(w.Left, w.Right, w.Center())
	}

A window sequence is lazy: the source is pulled only as far as the consumer
asks, and breaking out of the loop releases it.

# Error Handling

Configuration errors wrap [ErrInvalidArgument] and are returned before any
element is read. Errors from a caller's score function are yielded unchanged.
*/
package seqs
