package network

// RunResult carries the outcome of RunAsync.
type RunResult struct {
	Output Sample
	Err    error
}

// TrainResult carries the outcome of TrainAsync.
type TrainResult struct {
	Cost float64
	Err  error
}

// RunAsync runs in synchronously and returns a closed channel holding the
// result. It starts no goroutine and cannot be cancelled.
func (n *Network) RunAsync(in Sample) <-chan RunResult {
	ch := make(chan RunResult, 1)
	out, err := n.Run(in)
	ch <- RunResult{Output: out, Err: err}
	close(ch)
	return ch
}

// TrainAsync trains synchronously and returns a closed channel holding the
// result. It starts no goroutine and cannot be cancelled.
func (n *Network) TrainAsync(examples []Example) <-chan TrainResult {
	ch := make(chan TrainResult, 1)
	cost, err := n.Train(examples)
	ch <- TrainResult{Cost: cost, Err: err}
	close(ch)
	return ch
}
