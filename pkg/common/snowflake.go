package common

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

func node() *snowflake.Node {
	snowflakeOnce.Do(func() {
		n, err := snowflake.NewNode(rand.Int63n(1024))
		if err != nil {
			panic(fmt.Sprintf("snowflake init: %v", err))
		}
		snowflakeNode = n
	})
	return snowflakeNode
}

// UUIDint64 returns a new snowflake id. The node is lazily initialized with a
// random node number so parallel test processes do not collide.
func UUIDint64() int64 {
	return node().Generate().Int64()
}
