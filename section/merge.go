package section

import (
	"strings"

	"github.com/Omarhersan/leaseparse/model"
)

// mergeSmall folds undersized sections forward in a single deterministic
// pass. While the accumulated body of the buffered section is shorter than
// threshold, the next section's header and body are appended to the buffer
// instead of starting a new output section. The merged section keeps the
// first header.
func mergeSmall(sections []model.Section, threshold int) []model.Section {
	if len(sections) == 0 {
		return sections
	}

	var out []model.Section
	buffer := sections[0]

	for _, next := range sections[1:] {
		if len(buffer.Body) < threshold {
			buffer.Body = strings.TrimSpace(buffer.Body + "\n\n" + next.Header.String() + "\n" + next.Body)
			continue
		}
		out = append(out, buffer)
		buffer = next
	}

	return append(out, buffer)
}
