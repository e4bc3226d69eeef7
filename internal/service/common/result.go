package common

// Record は操作結果のエラーを分類してログに出し、Result にまとめる
// 成功時は何も出力しない（成功メッセージは呼び出し側の責務）
// failTag は想定外のエラーのときに使うタグ（WARN または ERROR）
func (r *Reporter) Record(action, resource, id string, err error, failTag Tag) Result {
	res := Result{
		Resource: resource,
		ID:       id,
		Outcome:  OutcomeOf(err),
		Err:      err,
	}
	if err == nil {
		return res
	}

	kind := ClassifyError(err)
	res.Reason = kind.String()
	switch kind {
	case KindNotFound:
		r.Printf(TagSkip, AlreadyGoneFormat, resource, id)
	case KindNotOwned:
		r.Printf(TagSkip, NotOwnedFormat, action, resource, id, err)
	case KindDependency:
		r.Printf(TagBlocked, BlockedFormat, resource, id, err)
	default:
		r.Printf(failTag, FailedFormat, action, resource, id, err)
	}
	return res
}

// Skipped はスキップした結果を作る
func Skipped(resource, id, reason string) Result {
	return Result{Resource: resource, ID: id, Outcome: OutcomeSkipped, Reason: reason}
}

// Failed は失敗した結果を作る
func Failed(resource, id string, err error) Result {
	return Result{Resource: resource, ID: id, Outcome: OutcomeFailed, Reason: ClassifyError(err).String(), Err: err}
}

// ListFailed は一覧取得の失敗を出力し、失敗結果を作る
func (r *Reporter) ListFailed(resource string, err error) Result {
	r.Printf(TagError, ListErrorFormat, resource, err)
	return Failed(resource, "-", err)
}
