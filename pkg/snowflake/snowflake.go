package snowflake

import (
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// SetNode 多实例部署时每个实例需要不同的节点号
func SetNode(n int64) error {
	nd, err := snowflake.NewNode(n)
	if err != nil {
		return err
	}
	node = nd
	return nil
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenSourceID 积分流水的业务单号
func GenSourceID(prefix string) string {
	return prefix + strconv.FormatInt(GenID(), 10)
}
