package service

import "github.com/freshkeep/backend/internal/model"

// DefaultStorageSeed returns the curated shelf-life table inserted on
// first run. Day counts are conservative whole-day estimates for fridge or
// pantry storage of the bought-fresh ingredient.
func DefaultStorageSeed() []model.StorageInfo {
	entry := func(category, name string, days int, desc, method string) model.StorageInfo {
		return model.StorageInfo{
			Category:      category,
			Name:          name,
			StorageDays:   days,
			StorageDesc:   desc,
			StorageMethod: method,
		}
	}

	return []model.StorageInfo{
		entry(model.CategoryOther, "tofu", 7, "5-7 days", "Keep submerged in water in a sealed container in the fridge; changing the water daily extends freshness."),
		entry(model.CategoryVegetable, "bean sprouts", 5, "3-5 days", "Store unwashed and dry in a sealed container in the fridge; keeping light out helps them stay crisp."),
		entry(model.CategoryVegetable, "mung bean sprouts", 4, "2-4 days", "Softer than soybean sprouts; refrigerate unwashed in a sealed container and use quickly."),
		entry(model.CategoryVegetable, "sweet potato", 30, "2-4 weeks", "Wrap in newspaper and keep in a cool, dark spot around 10-15C. Refrigeration degrades the flavor."),
		entry(model.CategoryVegetable, "potato", 30, "2-4 weeks", "Keep in a cool, dark, ventilated place. Storing with an apple slows sprouting. Do not refrigerate."),
		entry(model.CategoryVegetable, "onion", 60, "1-2 months", "Keep unpeeled in a mesh bag somewhere dry and cool; peeled onions go in a sealed container in the fridge."),
		entry(model.CategoryVegetable, "garlic", 60, "1-2 months", "Whole bulbs keep in a mesh bag in a cool dry place; peeled or minced garlic should be refrigerated or frozen."),
		entry(model.CategoryVegetable, "green onion", 14, "1-2 weeks", "Wrap the roots in damp paper towel and store upright in the fridge; chop and freeze for longer storage."),
		entry(model.CategoryVegetable, "ginger", 21, "2-3 weeks", "Keep unwashed wrapped in newspaper in a cool spot, or peel and freeze minced or sliced."),
		entry(model.CategoryVegetable, "cucumber", 7, "5-7 days", "Wrap each one in paper towel, bag them, and store upright in the fridge. Keeping them dry matters."),
		entry(model.CategoryVegetable, "eggplant", 7, "5-7 days", "Sensitive to cold; wrap in newspaper and keep at cool room temperature, refrigerating only for longer holds."),
		entry(model.CategoryVegetable, "zucchini", 7, "5-7 days", "Wrap in paper towel or newspaper and refrigerate; seal any cut face with plastic wrap."),
		entry(model.CategoryVegetable, "corn", 3, "2-3 days", "Refrigerate in the husk inside a plastic bag. Sweetness fades fast, so eat soon or steam and freeze."),
		entry(model.CategoryVegetable, "lettuce", 7, "5-7 days", "Store unwashed, wrapped in paper towel inside a bag, upright in the fridge."),
		entry(model.CategoryVegetable, "perilla leaves", 7, "5-7 days", "Dry the leaves, wrap in paper towel and refrigerate in a sealed container."),
		entry(model.CategoryVegetable, "salad greens", 5, "3-5 days", "Store like lettuce; mixed greens wilt faster, so use them early."),
		entry(model.CategoryVegetable, "chili pepper", 14, "1-2 weeks", "Keep dry, wrapped in paper towel, in a sealed container or bag in the fridge."),
		entry(model.CategoryVegetable, "bell pepper", 10, "7-10 days", "Wrap individually in paper towel and bag in the fridge; keep the stem end from drying out."),
		entry(model.CategoryVegetable, "paprika", 10, "7-10 days", "Wrap individually in paper towel and bag in the fridge; keep the stem end from drying out."),
		entry(model.CategoryVegetable, "spinach", 5, "3-5 days", "Keep the soil on, wrap in damp newspaper and store upright in the fridge with roots down."),
		entry(model.CategoryVegetable, "chives", 7, "5-7 days", "Wrap unwashed in newspaper and refrigerate; moisture makes them slimy quickly."),
		entry(model.CategoryVegetable, "cabbage", 21, "2-3 weeks", "Cut off what you need and wrap the rest fully in plastic; removing the core extends storage."),
		entry(model.CategoryVegetable, "iceberg lettuce", 10, "7-10 days", "Leave outer leaves on, wrap in plastic or bag, and refrigerate."),
		entry(model.CategoryVegetable, "broccoli", 7, "5-7 days", "Blanch, dry, and refrigerate or freeze in a sealed container; raw heads keep wrapped in damp paper towel."),
		entry(model.CategoryVegetable, "carrot", 21, "2-3 weeks", "Keep unwashed wrapped in paper towel in the fridge; if washed, dry completely before storing."),
		entry(model.CategoryVegetable, "burdock root", 14, "1-2 weeks", "Keep the soil on, wrap in newspaper, and store somewhere cool or in the fridge."),
		entry(model.CategoryVegetable, "lotus root", 10, "7-10 days", "Wrap unpeeled in newspaper and refrigerate; peeled pieces keep in vinegar water in the fridge."),
		entry(model.CategoryVegetable, "mushroom", 7, "5-7 days", "Sensitive to moisture; store unwashed in paper towel or a paper bag in the fridge."),
		entry(model.CategoryVegetable, "napa cabbage", 14, "1-2 weeks", "Wrap whole in newspaper and store upright, root down, somewhere cool or in the fridge."),
		entry(model.CategoryVegetable, "radish", 14, "1-2 weeks", "Cut off the greens so they stop drawing moisture, wrap in newspaper, and refrigerate."),
		entry(model.CategoryVegetable, "asparagus", 5, "3-5 days", "Trim the ends, wrap in damp paper towel, bag, and store upright in the fridge."),
		entry(model.CategoryFruit, "apple", 21, "1-3 weeks", "Bag and refrigerate away from other produce; apples give off ethylene that ripens neighbors."),
		entry(model.CategoryFruit, "pear", 10, "7-10 days", "Wrap in newspaper, bag, and refrigerate."),
		entry(model.CategoryFruit, "mandarin", 14, "1-2 weeks", "Keep spread out at cool room temperature, or rinse in light salt water, dry, and refrigerate."),
		entry(model.CategoryFruit, "watermelon", 7, "1 week whole", "Whole melons keep at cool room temperature; once cut, wrap the face tightly and always refrigerate."),
		entry(model.CategoryFruit, "melon", 5, "3-5 days ripe", "Ripen at room temperature until the blossom end softens, then wrap and refrigerate."),
		entry(model.CategoryFruit, "tomato", 10, "5-10 days", "Store stem-side down at room temperature; fully ripe tomatoes can be refrigerated."),
		entry(model.CategoryFruit, "strawberry", 4, "2-4 days", "Keep unwashed with stems on, in a single layer in a sealed container in the fridge."),
		entry(model.CategoryFruit, "kiwi", 28, "2-4 weeks ripe", "Ripen firm fruit at room temperature, then refrigerate."),
		entry(model.CategoryFruit, "blueberry", 10, "7-10 days", "Refrigerate unwashed in a sealed container; wash just before eating."),
		entry(model.CategoryFruit, "grape", 14, "1-2 weeks", "Keep unwashed, wrapped in a paper bag or paper towel, in the fridge."),
		entry(model.CategoryFruit, "peach", 5, "3-5 days ripe", "Ripen firm fruit at room temperature, then wrap in paper towel and refrigerate."),
		entry(model.CategoryFruit, "persimmon", 7, "5-7 days", "Firm persimmons keep at room temperature; soft ripe ones should be refrigerated."),
		entry(model.CategoryFruit, "banana", 7, "3-7 days", "Store at room temperature; wrapping the stem slows ripening. Do not refrigerate."),
		entry(model.CategoryFruit, "pineapple", 5, "3-5 days ripe", "Store leaf-end down at room temperature to spread sweetness; refrigerate cut pieces."),
		entry(model.CategoryFruit, "orange", 21, "2-3 weeks", "Keep at cool room temperature or in the fridge."),
		entry(model.CategoryFruit, "lemon", 28, "3-4 weeks", "Wrap individually in plastic and refrigerate to slow moisture loss."),
		entry(model.CategoryFruit, "mango", 5, "3-5 days ripe", "Ripen at room temperature until speckled, then refrigerate."),
		entry(model.CategoryFruit, "cherry", 7, "5-7 days", "Refrigerate unwashed in a sealed container."),
		entry(model.CategoryFruit, "avocado", 5, "3-5 days ripe", "Ripen firm fruit at room temperature, then refrigerate."),
		entry(model.CategoryOther, "ginseng", 14, "1-2 weeks", "Wrap in damp newspaper or moss, bag, and refrigerate."),
		entry(model.CategoryOther, "dried persimmon", 180, "3-6 months", "Keep frozen in a sealed container."),
	}
}
