package relay

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Call is the last call relayed to Publication contract.
type Call struct {
	Publication interop.Hash160
	Method      string
	ID          int
}

// AddReviewer calls addReviewer of Publication contract on behalf of this
// contract.
func AddReviewer(publication interop.Hash160, id int, reviewer interop.Hash160, deadline int) {
	self := runtime.GetExecutingScriptHash()
	contract.Call(publication, "addReviewer", contract.All, self, id, reviewer, deadline)
	store(publication, "addReviewer", id)
}

// AddCompletedReview calls addCompletedReview of Publication contract on
// behalf of this contract.
func AddCompletedReview(publication interop.Hash160, id, reviewID int) {
	self := runtime.GetExecutingScriptHash()
	contract.Call(publication, "addCompletedReview", contract.All, self, id, reviewID)
	store(publication, "addCompletedReview", id)
}

func Get() Call {
	val := storage.Get(storage.GetReadOnlyContext(), "key")
	if val == nil {
		return Call{}
	}
	return std.Deserialize(val.([]byte)).(Call)
}

func store(publication interop.Hash160, method string, id int) {
	storage.Put(storage.GetContext(), "key", std.Serialize(Call{
		Publication: publication,
		Method:      method,
		ID:          id,
	}))
}
