package filter

// channelKeywords is the heuristic name filter for clip/translation channels.
// Matching is case-insensitive substring, nothing smarter.
var channelKeywords = []string{
	"hololive",
	"ホロライブ",
	"精華",
	"翻譯",
	"烤肉",
	"剪輯",
	"中文",
}

// videoHashtags is the creator/topic hashtag vocabulary used to decide video
// relevance from descriptions. Deliberately broad and non-exhaustive.
var videoHashtags = []string{
	// General
	"#hololive", "#hololiveen", "#hololiveid", "#hololive中文", "#hololive精華", "#vtuber",

	// JP Gen 0
	"#tokinosora", "#soraart", "#ときのそら",
	"#robocosan", "#robocoart", "#ロボ子さん",
	"#sakuramiko", "#miko_art", "#さくらみこ",
	"#hoshimachisuisei", "#hoshimachi_art", "#星街すいせい",
	"#azki", "#azkiart",

	// JP Gen 1
	"#yozoramel", "#melart", "#夜空メル",
	"#shirakamifubuki", "#fbkarts", "#白上フブキ",
	"#natsuiromatsuri", "#matsuriart", "#夏色まつり",
	"#akaihaato", "#haachamaart", "#赤井はあと",
	"#akirosenthal", "#rose_art", "#アキロゼ",

	// JP Gen 2
	"#minatoaqua", "#aquaart", "#湊あくあ",
	"#murasakishion", "#shionart", "#紫咲シオン",
	"#nakiriayame", "#ayameart", "#百鬼あやめ",
	"#yuzukichoco", "#chocoart", "#癒月ちょこ",
	"#oozorasubaru", "#subaruart", "#大空スバル",

	// Gamers
	"#ookamimio", "#miofa", "#大神ミオ",
	"#nekomataokayu", "#onigiri_art", "#猫又おかゆ",
	"#inugamikorone", "#koroneart", "#戌神ころね",

	// JP Gen 3
	"#usadapekora", "#pekoraart", "#兎田ぺこら",
	"#shiranuiflare", "#flareart", "#不知火フレア",
	"#shiroganenoel", "#noelart", "#白銀ノエル",
	"#houshoumarine", "#marineart", "#宝鐘マリン",

	// JP Gen 4
	"#amanekanata", "#kanataart", "#天音かなた",
	"#tsunomakiwatame", "#watameart", "#角巻わため",
	"#tokoyamitowa", "#towaart", "#常闇トワ",
	"#himemoriluna", "#lunaart", "#姫森ルーナ",

	// JP Gen 5
	"#yukihanalamy", "#lamyart", "#雪花ラミィ",
	"#momosuzunene", "#neneart", "#桃鈴ねね",
	"#shishirobotan", "#botanart", "#獅白ぼたん",
	"#omarupolka", "#polka_art", "#尾丸ポルカ",

	// HoloX
	"#laplusdarknesss", "#laplus_artdesu", "#ラプラス・ダークネス",
	"#takanelui", "#luiart", "#鷹嶺ルイ",
	"#hakuikoyori", "#koyoriart", "#博衣こより",
	"#sakamatachloe", "#chloeart", "#沙花叉クロヱ",
	"#kazamairoha", "#irohaart", "#風真いろは",

	// EN Myth
	"#moricalliope", "#callillust",
	"#takanashikiara", "#artkfp", "#kfp",
	"#ninomaeinanis", "#inart",
	"#gawrgura", "#gawrt",
	"#watsonamelia", "#ameliart",

	// EN Promise
	"#irys", "#irysart",
	"#ceresfauna", "#faunart",
	"#ourokronii", "#kronillust",
	"#nanashimumei", "#mumeillust",
	"#hakosbaelz", "#baelzart",

	// EN Advent
	"#shiorinovella", "#novellart",
	"#kosekibijou", "#bijouart",
	"#nerissaravencroft", "#ravencroftart",
	"#fuwamoco", "#fuwawaart", "#mococoart",

	// EN Justice
	"#elizabethroseblood", "#erbloodart",
	"#gigigrimoire", "#grimoart",
	"#ceciliaimmergreen", "#immergreenart",
	"#raorapanda", "#pandart",

	// ID Gen 1
	"#ayunda_risu", "#risuart",
	"#moona_hoshinova", "#moonart",
	"#airani_iofifteen", "#ioarts",

	// ID Gen 2
	"#kureijiollie", "#ollieart",
	"#anyacrisella", "#anyart",
	"#pavoliareine", "#reineart",

	// ID Gen 3
	"#vestiazeta", "#zetart",
	"#kaelakovalskia", "#kaelart",
	"#kobokanaeru", "#kobokart",
}
