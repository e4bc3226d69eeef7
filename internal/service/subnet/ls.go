package subnet

import (
	"context"

	"ekscleanup/internal/service/common"
)

// List は DELETE_FAILED のサブネットを表示するだけで、何も削除しない
func (c *Cleaner) List(ctx context.Context) error {
	failed, err := c.FailedSubnets(ctx)
	if err != nil {
		return err
	}
	if len(failed) == 0 {
		c.out.Printf(common.TagDone, "No DELETE_FAILED subnets found.")
		return nil
	}

	columns := []common.TableColumn{
		{Header: "論理ID"},
		{Header: "サブネットID", Width: 24},
		{Header: "ステータス理由"},
	}
	data := make([][]string, 0, len(failed))
	for _, r := range failed {
		data = append(data, []string{r.LogicalId, r.PhysicalId, r.StatusReason})
	}
	c.out.Table("DELETE_FAILED のサブネット", columns, data)
	return nil
}
