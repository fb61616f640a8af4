package network

import "testing"

func TestRankInfluence(t *testing.T) {
	g := &Graph{
		StartID: 1,
		Nodes: map[int64]*Node{
			1: {DocumentID: 1, Title: "A"},
			2: {DocumentID: 2, Title: "B"},
			3: {DocumentID: 3, Title: "C"},
		},
		Edges: []Edge{
			{RelationID: 1, SourceDocumentID: 1, TargetDocumentID: 2},
			{RelationID: 2, SourceDocumentID: 3, TargetDocumentID: 2},
			{RelationID: 3, SourceDocumentID: 2, TargetDocumentID: 3},
		},
	}

	ranked := RankInfluence(g)
	if len(ranked) != 3 {
		t.Fatalf("got %d entries", len(ranked))
	}

	// Node 2: in 2, out 1 -> 4.5. Node 3: in 1, out 1 -> 2.5. Node 1: out 1 -> 0.5.
	want := []struct {
		id    int64
		score float64
	}{{2, 4.5}, {3, 2.5}, {1, 0.5}}
	for i, w := range want {
		if ranked[i].DocumentID != w.id || ranked[i].Score != w.score {
			t.Errorf("rank[%d] = doc %d score %.1f, want doc %d score %.1f",
				i, ranked[i].DocumentID, ranked[i].Score, w.id, w.score)
		}
	}
}

func TestRankInfluenceTiesAreDeterministic(t *testing.T) {
	g := &Graph{
		StartID: 1,
		Nodes: map[int64]*Node{
			1: {DocumentID: 1},
			3: {DocumentID: 3},
			5: {DocumentID: 5},
		},
		Edges: []Edge{
			{RelationID: 1, SourceDocumentID: 1, TargetDocumentID: 3},
			{RelationID: 2, SourceDocumentID: 1, TargetDocumentID: 5},
		},
	}

	for range 5 {
		ranked := RankInfluence(g)
		// Nodes 3 and 5 tie at 2.0; the lower document id comes first.
		if ranked[0].DocumentID != 3 || ranked[1].DocumentID != 5 || ranked[2].DocumentID != 1 {
			t.Fatalf("tie order not deterministic: %+v", ranked)
		}
	}
}

func TestRankInfluenceTruncates(t *testing.T) {
	g := &Graph{StartID: 1, Nodes: map[int64]*Node{}}
	for id := int64(1); id <= 15; id++ {
		g.Nodes[id] = &Node{DocumentID: id}
	}

	ranked := RankInfluence(g)
	if len(ranked) != 10 {
		t.Fatalf("got %d entries, want 10", len(ranked))
	}
	// All scores tie at zero, so the ten lowest ids survive in order.
	for i, r := range ranked {
		if r.DocumentID != int64(i+1) {
			t.Errorf("rank[%d] = doc %d", i, r.DocumentID)
		}
	}
}
