// Package cluster builds a group-average (UPGMA) dendrogram over answer
// sheets and cuts it into flat groups.
//
// What:
//
//   - Build: agglomerative clustering on a precomputed (normally
//     standardized) distance matrix indexed by Sheet.ID. Each round scans
//     every active pair in order and merges the first pair with the minimal
//     group-average distance.
//   - GroupsAtDepth: breadth-first expansion of the root for a number of
//     levels; leaves reached early stay terminal.
//   - GroupsByThreshold: follow the trunk of lower InterDistance from the
//     root, peeling off siblings, while the current node's InterDistance is
//     at least the threshold.
//   - OptimalDepth: the first local minimum of
//     w·mean(IntraDistance) + (1-w)·clusterCount over depths.
//
// Nodes live in an arena and refer to their children by index; the root is
// the last node created.
//
// Complexity:
//
//   - Build: O(N³) group-average evaluations over N sheets, each O(|A|·|B|).
//   - Cuts: O(N).
package cluster
