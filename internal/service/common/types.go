package common

// TableColumn はテーブルの列定義
type TableColumn struct {
	Header string
	Width  int
}

// Outcome はリソース1件ごとの処理結果
type Outcome string

const (
	OutcomeDeleted Outcome = "deleted"
	OutcomeSkipped Outcome = "skipped"
	OutcomeBlocked Outcome = "blocked"
	OutcomeFailed  Outcome = "failed"
)

// リソース種別の表示名
const (
	ResourceElasticIP        = "Elastic IP"
	ResourceVpcEndpoint      = "VPC endpoint"
	ResourceInternetGateway  = "Internet gateway"
	ResourceRouteTable       = "Route table"
	ResourceRouteTableAssoc  = "Route table association"
	ResourceSubnet           = "Subnet"
	ResourceNetworkACL       = "Network ACL"
	ResourceSecurityGroup    = "Security group"
	ResourceVpc              = "VPC"
	ResourceNatGateway       = "NAT gateway"
	ResourceNetworkInterface = "Network interface"
	ResourceLoadBalancer     = "Classic ELB"
	ResourceLoadBalancerV2   = "Load balancer"
	ResourceInstance         = "EC2 instance"
)

// Result は1リソースの処理結果
type Result struct {
	Resource string // リソース種別（例: "Subnet"）
	ID       string
	Outcome  Outcome
	Reason   string // スキップ・失敗の理由
	Err      error
}

// Report は1回の実行で得られた結果の一覧
type Report struct {
	Results []Result
}

// Add は結果を追加する
func (r *Report) Add(results ...Result) {
	r.Results = append(r.Results, results...)
}

// Count は指定した結果種別の件数を返す
func (r Report) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// ByResource は指定したリソース種別の結果だけを返す
func (r Report) ByResource(resource string) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Resource == resource {
			out = append(out, res)
		}
	}
	return out
}

// Find はリソース種別とIDが一致する最初の結果を返す
func (r Report) Find(resource, id string) (Result, bool) {
	for _, res := range r.Results {
		if res.Resource == resource && res.ID == id {
			return res, true
		}
	}
	return Result{}, false
}
