package spt

// nodeSave is a node label as it was before the first change of a trial.
type nodeSave struct {
	v    int
	dist int64
	pe   int
}

// journal records the first prior label of every node touched during a
// trial, and every mask flip, so that Rollback is exact.
type journal struct {
	active bool
	total  int64
	nodes  []nodeSave
	edges  []int
	stamp  []uint32 // stamp[v] == epoch ⇒ v already saved
	epoch  uint32
}

func (j *journal) init(n int) { j.stamp = make([]uint32, n) }

func (j *journal) begin(total int64) {
	j.active = true
	j.total = total
	j.nodes = j.nodes[:0]
	j.edges = j.edges[:0]
	j.epoch++
}

func (j *journal) stop() { j.active = false }

func (j *journal) saveNode(v int, dist int64, pe int) {
	if !j.active || j.stamp[v] == j.epoch {
		return
	}
	j.stamp[v] = j.epoch
	j.nodes = append(j.nodes, nodeSave{v: v, dist: dist, pe: pe})
}

func (j *journal) saveEdge(e int) {
	if j.active {
		j.edges = append(j.edges, e)
	}
}
