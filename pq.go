package npuzzle

// frontierItem is one open-list entry. Ordering is by (FCost, GScore, Seq)
// ascending: f is the A* priority, g breaks f ties, and the insertion
// sequence number makes the remaining ties deterministic.
type frontierItem struct {
	FCost  int
	GScore int
	Seq    int
	State  *State
	Prev   *State
}

type frontier []*frontierItem

func (queue frontier) Len() int { return len(queue) }
func (queue frontier) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	if queue[i].GScore != queue[j].GScore {
		return queue[i].GScore < queue[j].GScore
	}
	return queue[i].Seq < queue[j].Seq
}
func (queue frontier) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
}

func (queue *frontier) Push(x any) {
	*queue = append(*queue, x.(*frontierItem))
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
