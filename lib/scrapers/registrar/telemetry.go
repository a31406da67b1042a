package registrar

import (
	"coursecatalog-backend/lib/restyutil"
)

var instrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response transcript dumps for
// clients created after this call.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	instrumentOutput = output
}
