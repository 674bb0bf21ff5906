package query

import (
	"math"

	"github.com/bibliofile/bibliofile/pkg/types"
)

// book builds one fixture item. A year of 0 leaves year-published unset.
func book(id, title, author string, year float64, status string, genres ...string) *types.CatalogItem {
	item := types.NewCatalogItem(id, "catalog/"+id+".md")
	item.SetField("title", types.String(title))
	item.SetField("author", types.String(author))
	if year != 0 {
		item.SetField("year-published", types.Number(year))
	}
	item.SetField("catalog-status", types.String(status))
	if len(genres) > 0 {
		elems := make([]types.Value, len(genres))
		for i, g := range genres {
			elems[i] = types.String(g)
		}
		item.SetField("genres", types.Seq(elems))
	}
	return item
}

// gothicCatalog is the 15-entry Lovecraft/Poe/Le Fanu fixture:
// 3 drafts, 12 published, nine entries published in [1800,1900], one
// entry each from 1928 and 1942, and one with no year at all.
func gothicCatalog() []*types.CatalogItem {
	return []*types.CatalogItem{
		book("cthulhu", "The Call of Cthulhu", "H. P. Lovecraft", 1928, "published", "cosmic-horror", "short-story"),
		book("innsmouth", "The Shadow over Innsmouth", "H. P. Lovecraft", 1936, "published", "cosmic-horror"),
		book("dunwich", "The Dunwich Horror", "H. P. Lovecraft", 1929, "published", "cosmic-horror"),
		book("mountains", "At the Mountains of Madness", "H. P. Lovecraft", 1936, "published", "cosmic-horror", "novella"),
		book("haunter", "The Haunter of the Dark", "H. P. Lovecraft", 0, "draft", "cosmic-horror"),
		book("raven", "The Raven", "Edgar Allan Poe", 1845, "published", "poetry", "gothic"),
		book("usher", "The Fall of the House of Usher", "Edgar Allan Poe", 1839, "published", "gothic", "short-story"),
		book("tell-tale", "The Tell-Tale Heart", "Edgar Allan Poe", 1843, "published", "gothic", "short-story"),
		book("masque", "The Masque of the Red Death", "Edgar Allan Poe", 1842, "published", "gothic"),
		book("cask", "The Cask of Amontillado", "Edgar Allan Poe", 1846, "published", "gothic", "short-story"),
		book("carmilla", "Carmilla", "Sheridan Le Fanu", 1872, "published", "gothic", "vampire"),
		book("silas", "Uncle Silas", "Sheridan Le Fanu", 1864, "published", "gothic", "mystery"),
		book("glass-darkly", "In a Glass Darkly", "Sheridan Le Fanu", 1872, "draft", "gothic"),
		book("churchyard", "The House by the Churchyard", "Sheridan Le Fanu", 1863, "draft", "gothic"),
		book("herbert-west", "Herbert West, Reanimator", "H. P. Lovecraft", 1942, "published", "cosmic-horror"),
	}
}

func fptr(f float64) *float64 { return &f }

var nan = math.NaN()
